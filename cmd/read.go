package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/venturno/sexpr/diagnostic"
	"github.com/venturno/sexpr/internal/logging"
	"github.com/venturno/sexpr/node"
	"github.com/venturno/sexpr/reader"
)

var (
	readExpression bool
	readTree       bool
)

// readCmd represents the read command, the CLI surface over the reader
// package: given either literal expressions or file paths, it reads each
// one and either prints its tree or reports its diagnostics.
var readCmd = &cobra.Command{
	Use:   "read [args...]",
	Short: "Read s-expression source and print its tree or diagnostics",
	Long:  `Read s-expression source, supplied either as literal expressions or as file paths, and print the resulting tree or any diagnostics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, names, err := readInputs(args)
		if err != nil {
			return err
		}

		color := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

		logger := logging.Default()
		status := 0
		for i, text := range sources {
			sink := &diagnostic.RecordingSink{}
			tree, err := reader.ReadString(names[i], text, sink)
			for _, d := range sink.Diagnostics {
				fmt.Fprint(os.Stderr, diagnostic.Render(d, color))
			}
			if err != nil {
				logger.Error("read failed", logging.FieldPath, names[i], logging.FieldError, err)
				status = 1
				continue
			}
			if readTree {
				printTree(tree, 0)
			}
		}
		if status != 0 {
			return fmt.Errorf("one or more inputs failed to read")
		}
		return nil
	},
}

func readInputs(args []string) (sources, names []string, err error) {
	if readExpression {
		for i, a := range args {
			sources = append(sources, a)
			names = append(names, fmt.Sprintf("<expr %d>", i))
		}
		return sources, names, nil
	}
	for _, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, string(b))
		names = append(names, path)
	}
	return sources, names, nil
}

func printTree(n *node.Node, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	if n.IsAtom() {
		fmt.Printf("%s%s %q\n", indent, n.Tag, n.Contents)
		return
	}
	fmt.Printf("%s%s\n", indent, n.Tag)
	for _, c := range n.Children {
		printTree(c, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(readCmd)

	readCmd.Flags().BoolVarP(&readExpression, "expr", "e", false, "interpret arguments as literal expressions instead of file paths")
	readCmd.Flags().BoolVarP(&readTree, "tree", "t", false, "print the parsed tree")
}

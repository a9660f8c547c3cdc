package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/npillmayer/minihtml/dom"
	"github.com/npillmayer/minihtml/dom/domdbg"
	"github.com/npillmayer/minihtml/dom/stylesheet"
	"github.com/npillmayer/minihtml/selector"
	"github.com/npillmayer/minihtml/stream"
	"github.com/npillmayer/minihtml/writer"
	"github.com/spf13/cobra"
)

var (
	maxMatches int
	pretty     bool
	outFile    string
)

func init() {
	selectCmd.Flags().IntVarP(&maxMatches, "max", "m", 0, "maximum number of matches, 0 for all")
	textCmd.Flags().IntVarP(&maxMatches, "max", "m", 0, "maximum number of matches, 0 for all")
	renderCmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "indent output")
	renderCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default: standard output)")
	rootCmd.AddCommand(parseCmd, findCmd, selectCmd, textCmd, renderCmd, treeCmd, dotCmd, stylesCmd)
}

// document loads the document named by the first argument.
func document(cmd *cobra.Command, args []string) (*dom.Node, error) {
	l := loader{opts: settings, strict: strict, warn: cmd.ErrOrStderr()}
	return l.load(cmd.Context(), args[0])
}

var parseCmd = &cobra.Command{
	Use:   "parse <source>",
	Short: "Parse a document and print statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		doc, err := document(cmd, args)
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), doc)
		fmt.Fprintf(cmd.OutOrStdout(), "time:     %v\n", time.Since(start).Round(time.Microsecond))
		return nil
	},
}

var findCmd = &cobra.Command{
	Use:   "find <source> <pattern>",
	Short: "Print the first element matching a selector pattern",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document(cmd, args)
		if err != nil {
			return err
		}
		n, err := selector.Find(doc, args[1])
		if err != nil {
			return err
		}
		return printNodes(cmd.OutOrStdout(), []*dom.Node{n})
	},
}

var selectCmd = &cobra.Command{
	Use:   "select <source> <pattern>",
	Short: "Print all elements matching a selector pattern",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document(cmd, args)
		if err != nil {
			return err
		}
		nodes, err := selector.Collect(doc, args[1], maxMatches)
		if err != nil {
			return err
		}
		return printNodes(cmd.OutOrStdout(), nodes)
	},
}

var textCmd = &cobra.Command{
	Use:   "text <source> [pattern]",
	Short: "Print the visible text of a document or of matching elements",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document(cmd, args)
		if err != nil {
			return err
		}
		nodes := []*dom.Node{doc}
		if len(args) > 1 {
			if nodes, err = selector.Collect(doc, args[1], maxMatches); err != nil {
				return err
			}
		}
		printText(cmd.OutOrStdout(), nodes)
		return nil
	},
}

var renderCmd = &cobra.Command{
	Use:   "render <source>",
	Short: "Parse a document and write it back as HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document(cmd, args)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), doc, outFile, pretty || settings.Pretty)
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree <source>",
	Short: "Print the document tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), domdbg.Print(doc))
		return nil
	},
}

var dotCmd = &cobra.Command{
	Use:   "dot <source>",
	Short: "Print the document tree as a GraphViz diagram",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document(cmd, args)
		if err != nil {
			return err
		}
		return domdbg.ToGraphViz(doc, cmd.OutOrStdout())
	},
}

var stylesCmd = &cobra.Command{
	Use:   "styles <source>",
	Short: "Print the CSS rules of a document and the elements they apply to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document(cmd, args)
		if err != nil {
			return err
		}
		return printStyles(cmd.OutOrStdout(), doc)
	},
}

// ---------------------------------------------------------------------------

func printSummary(w io.Writer, doc *dom.Node) {
	comments := len(doc.FindAll(dom.NodeIsKind(dom.CommentNode)))
	fmt.Fprintf(w, "elements: %d\n", doc.CountElements())
	fmt.Fprintf(w, "comments: %d\n", comments)
	if title := doc.FindFirst(dom.NodeHasName("title")); title != nil {
		fmt.Fprintf(w, "title:    %s\n", strings.TrimSpace(title.InnerText()))
	}
}

func printNodes(w io.Writer, nodes []*dom.Node) error {
	for _, n := range nodes {
		if err := writer.Render(w, n); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func printText(w io.Writer, nodes []*dom.Node) {
	for _, n := range nodes {
		if text := strings.TrimSpace(n.Text()); text != "" {
			fmt.Fprintln(w, text)
		}
	}
}

func render(w io.Writer, doc *dom.Node, path string, indent bool) error {
	if !indent {
		if path != "" {
			return writer.WriteFile(path, doc)
		}
		return writer.Render(w, doc)
	}
	html := writer.Pretty(doc) + "\n"
	if path == "" {
		_, err := io.WriteString(w, html)
		return err
	}
	f, err := stream.CreateFile(path)
	if err != nil {
		return err
	}
	if err = stream.WriteString(f, html); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printStyles(w io.Writer, doc *dom.Node) error {
	rules, err := stylesheet.Rules(doc)
	if err != nil {
		return err
	}
	for _, r := range rules {
		fmt.Fprintf(w, "%s {", r.Selector())
		for _, d := range r.Declarations {
			fmt.Fprintf(w, " %s", d)
		}
		fmt.Fprint(w, " }")
		nodes, err := r.Matches(doc)
		switch {
		case errors.Is(err, selector.ErrInvalidPattern):
			fmt.Fprintln(w, "  (selector not supported)")
		case err != nil:
			return err
		default:
			fmt.Fprintf(w, "  (%d elements)\n", len(nodes))
		}
	}
	for _, n := range doc.FindAll(dom.NodeHasAttribute("style")) {
		decls, err := stylesheet.InlineStyle(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s style=", n)
		for _, d := range decls {
			fmt.Fprintf(w, " %s", d)
		}
		fmt.Fprintln(w)
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/immutree/persistent/bst"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
	balancing  string
	format     string
	trace      string
	remove     []int
}

func newRootCommand() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:          "immutree [flags] VALUES...",
		Short:        "Build a persistent binary search tree from integer values",
		Args:         cobra.MinimumNArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("balancing") {
				config.Balancing = opts.balancing
			}
			if flags.Changed("format") {
				config.Format = opts.format
			}
			if flags.Changed("trace") {
				config.Tracing.Level = opts.trace
			}
			if config.Tracing.Level != "" {
				if err = setupTracing(config.Tracing); err != nil {
					return err
				}
			}
			return run(cmd.OutOrStdout(), config, args, opts.remove)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVarP(&opts.balancing, "balancing", "b", defaultConfig.Balancing, "balancing strategy: avl, redblack or unbalanced")
	cmd.Flags().StringVarP(&opts.format, "format", "f", defaultConfig.Format, "output format: tree, list or yaml")
	cmd.Flags().StringVar(&opts.trace, "trace", "", "trace level: Error, Info or Debug")
	cmd.Flags().IntSliceVarP(&opts.remove, "remove", "r", nil, "values to remove after insertion")
	return cmd
}

// Report is the YAML rendition of a tree.
type Report struct {
	Balancing   string `yaml:"balancing"`
	Size        int    `yaml:"size"`
	Height      int    `yaml:"height"`
	BlackHeight int    `yaml:"black_height,omitempty"`
	Values      []int  `yaml:"values,flow"`
	Valid       bool   `yaml:"valid"`
}

func run(out io.Writer, config Config, args []string, remove []int) error {
	balancing, err := bst.ParseBalancing(config.Balancing)
	if err != nil {
		return err
	}
	values, err := parseValues(args)
	if err != nil {
		return err
	}
	tree := bst.Ordered[int](bst.WithBalancing(balancing))
	for _, v := range values {
		tree = tree.With(v)
	}
	for _, v := range remove {
		tree = tree.WithDeleted(v)
	}
	if err = tree.Check(); err != nil {
		return err
	}
	switch config.Format {
	case "tree":
		_, err = fmt.Fprint(out, tree.String())
	case "list":
		_, err = fmt.Fprintln(out, tree.ToList().String())
	case "yaml":
		err = writeReport(out, tree)
	default:
		err = fmt.Errorf("unknown output format %q", config.Format)
	}
	return err
}

func parseValues(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("not an integer value: %q", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

func writeReport(out io.Writer, tree bst.Tree[int]) error {
	report := Report{
		Balancing: tree.Balancing().String(),
		Size:      tree.Size(),
		Height:    tree.Height(),
		Values:    tree.ToList().Slice(),
		Valid:     tree.Check() == nil,
	}
	if tree.Balancing() == bst.RedBlack {
		report.BlackHeight = tree.BlackHeight()
	}
	enc := yaml.NewEncoder(out)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}

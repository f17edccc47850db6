package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/milk9111/motion/choreo"
	"github.com/spf13/cobra"
)

func addList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list [file]",
		Short: "List the animations and sequences in the choreography files",
		Example: `
choreo list
choreo list demo --dir ./choreo
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			lib, err := choreo.OpenLibrary(cfg.Dir, nil, cfg.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			names := lib.Names()
			if len(args) == 1 {
				names = []string{args[0]}
			}
			for _, name := range names {
				f, err := lib.File(name)
				if err != nil {
					return err
				}
				printFile(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func printFile(w io.Writer, f *choreo.File) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintln(w, bold.Sprint(f.Name))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Animation"), bold.Sprint("Target"), bold.Sprint("Kind"), bold.Sprint("Duration"), bold.Sprint("Easing"))
	for _, name := range f.AnimationNames() {
		a := f.Animations[name]
		ease := a.Easing
		if ease == "" {
			ease = faint.Sprint("linear")
		}
		tbl.AddRow(name, a.Target, a.Kind, a.Duration(), ease)
	}
	_, _ = fmt.Fprintln(w, tbl)

	if len(f.Sequences) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w, "")
	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Sequence"), bold.Sprint("Steps"))
	for _, name := range f.SequenceNames() {
		tbl.AddRow(name, strings.Join(f.Sequences[name].Steps, " > "))
	}
	_, _ = fmt.Fprintln(w, tbl)
}

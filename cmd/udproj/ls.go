package main

import (
	"fmt"
)

func lsCommand(opts LsOptions, ui UI) error {
	p := &Pool{}
	defer p.Close()

	repo, err := NewTreebankRepository(p, opts.TreebankPath)
	if err != nil {
		return err
	}

	treebanks, err := repo.List()
	if err != nil {
		return err
	}

	for _, tb := range treebanks {
		fmt.Fprintf(ui.Out, "🌳 %d %s\n", tb.Id, tb.Title)
	}

	return nil
}

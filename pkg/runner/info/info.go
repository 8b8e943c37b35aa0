package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tasktree/pkg/app"
	"tableflip.dev/tasktree/pkg/entry"
	"tableflip.dev/tasktree/pkg/store"
)

// Info prints where state is kept and a summary of it.
type Info struct {
	Config  store.Config
	Session *app.Session
	Cache   store.Cache

	Out io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("TASKTREE_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "TASKTREE_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "TASKTREE_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Setting"), bold.Sprint("Value"))
	tbl.AddRow("path", n.Config.BasePath())
	tbl.AddRow("tasks", n.Config.TasksPath())
	tbl.AddRow("remote", n.Config.RemoteURL())
	tbl.AddRow("listen", n.Config.ListenAddr())
	tbl.AddRow("log-level", n.Config.LogLevel())
	if n.Cache != nil {
		tbl.AddRow("cache file", n.Cache.Path())
	}
	_, _ = fmt.Fprintln(out, tbl)

	if n.Session == nil {
		return nil
	}
	st := n.Session.State
	done := 0
	folders := 0
	st.Root.Walk(func(e *entry.Entry, depth int) bool {
		switch {
		case depth == 0:
		case e.Folder != nil:
			folders++
		case e.Task.Done:
			done++
		}
		return true
	})
	total := st.Root.Count() - 1

	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("State"), "")
	tbl.AddRow("entries", total)
	tbl.AddRow("folders", folders)
	tbl.AddRow("tasks done", fmt.Sprintf("%d/%d", done, total-folders))
	tbl.AddRow("latest id", uint64(st.IDs.LatestID))
	tbl.AddRow("view", st.Current().Name)
	if id, ok := st.EditTarget(); ok {
		tbl.AddRow("editing", fmt.Sprintf("%d %q", id, st.Input))
	}
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}

//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Odense Bys Museer
//
// This file is part of DWS.
//
// DWS is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/cristalhq/acmd"
	"github.com/fsnotify/fsnotify"

	"github.com/odensebysmuseer/DWS/writer"
)

func init() {
	commands = append(commands, acmd.Command{
		Name:        "watch",
		Description: "Re-render a JSON document whenever it changes",
		ExecFunc:    runWatch,
	})
}

func runWatch(ctx context.Context, args []string) error {
	var rf renderFlags
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	rf.register(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if rf.target == "" {
		rf.target = "html"
	}
	mode, err := rf.mode()
	if err != nil {
		return err
	}
	src := fs.Arg(0)
	if src == "" {
		return errors.New("source file is required")
	}
	if rf.out == "" {
		return errors.New("output file is required")
	}
	absPath, err := filepath.Abs(src)
	if err != nil {
		return err
	}

	// Watch the directory, not the file: editors replace files on save,
	// which would silently drop a watch on the file itself.
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err = w.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	renderOnce := func() {
		if err2 := renderFile(absPath, rf.out, mode, &rf); err2 != nil {
			slog.Error("render failed", "source", src, "err", err2)
			return
		}
		slog.Info("rendered", "source", src, "target", rf.out)
	}
	renderOnce()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != absPath {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			renderOnce()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "err", err)
		}
	}
}

// renderFile renders the document in src into the file out.
func renderFile(src, out string, mode writer.Mode, rf *renderFlags) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	dst, err := os.Create(out)
	if err != nil {
		return err
	}
	return renderDocument(dst, in, mode, rf)
}

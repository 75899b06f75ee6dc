//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Odense Bys Museer
//
// This file is part of DWS.
//
// DWS is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Command dws renders JSON documents in the representations of the data
// editor: canonical JSON text, compact or indented, or the editor's HTML
// fragment tree.
package main

import (
	"log/slog"
	"os"

	"github.com/cristalhq/acmd"
	console "github.com/phsym/console-slog"
)

const version = "0.2.0"

// commands is filled by the init functions of the subcommand files.
var commands []acmd.Command

func main() {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	r := acmd.RunnerOf(commands, acmd.Config{
		AppName:        "dws",
		AppDescription: "Render JSON documents as canonical JSON or editor HTML",
		Version:        version,
	})
	if err := r.Run(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

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
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cristalhq/acmd"
	"golang.org/x/term"
	inf "gopkg.in/inf.v0"

	"github.com/odensebysmuseer/DWS/scalar"
	"github.com/odensebysmuseer/DWS/writer"
)

func init() {
	commands = append(commands, acmd.Command{
		Name:        "render",
		Description: "Render a JSON document in the chosen representation",
		ExecFunc:    runRender,
	})
}

// renderFlags are the options shared by the render and watch commands.
type renderFlags struct {
	target string
	out    string
	quote  string
	width  int
}

func (rf *renderFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&rf.target, "t", "", "target representation (compact, indented, html)")
	fs.StringVar(&rf.out, "o", "", "output file (default stdout)")
	fs.StringVar(&rf.quote, "q", `"`, "quote character for JSON output")
	fs.IntVar(&rf.width, "w", 2, "indent width for indented output")
}

// mode returns the selected representation. Without an explicit target,
// a terminal on stdout gets indented output, everything else compact.
func (rf *renderFlags) mode() (writer.Mode, error) {
	if rf.target == "" {
		if rf.out == "" && term.IsTerminal(int(os.Stdout.Fd())) {
			return writer.ModeIndented, nil
		}
		return writer.ModeCompact, nil
	}
	return writer.ParseMode(rf.target)
}

func runRender(_ context.Context, args []string) error {
	var rf renderFlags
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	rf.register(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	mode, err := rf.mode()
	if err != nil {
		return err
	}
	src := fs.Arg(0)

	var in io.Reader = os.Stdin
	if src != "" && src != "-" {
		fd, err2 := os.Open(src)
		if err2 != nil {
			return err2
		}
		defer fd.Close()
		in = fd
	}
	if rf.out == "" {
		return renderDocument(struct{ io.Writer }{os.Stdout}, in, mode, &rf)
	}
	fd, err := os.Create(rf.out)
	if err != nil {
		return err
	}
	return renderDocument(fd, in, mode, &rf)
}

// renderDocument replays the JSON token stream of src through a writer
// emitting to dst. When dst is an io.Closer the writer closes it.
func renderDocument(dst io.Writer, src io.Reader, mode writer.Mode, rf *renderFlags) error {
	if len(rf.quote) != 1 {
		return writer.ErrQuoteChar
	}
	w := writer.New(dst, mode)
	if err := w.SetQuoteChar(rf.quote[0]); err != nil {
		return err
	}
	if err := w.SetIndentWidth(rf.width); err != nil {
		return err
	}
	dec := json.NewDecoder(src)
	dec.UseNumber()
	if err := replay(dec, w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// replay drives the writer from the decoder's token stream.
func replay(dec *json.Decoder, w *writer.Writer) error {
	type frame struct {
		object bool
		key    bool
	}
	var stack []frame

	// completed marks that a value finished at the current depth, so the
	// next string in an object is a property name again.
	completed := func() {
		if len(stack) > 0 {
			stack[len(stack)-1].key = false
		}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				if err = w.WriteStartObject(); err != nil {
					return err
				}
				stack = append(stack, frame{object: true})
			case '[':
				if err = w.WriteStartArray(); err != nil {
					return err
				}
				stack = append(stack, frame{})
			case '}':
				if err = w.WriteEndObject(); err != nil {
					return err
				}
				stack = stack[:len(stack)-1]
				completed()
			case ']':
				if err = w.WriteEndArray(); err != nil {
					return err
				}
				stack = stack[:len(stack)-1]
				completed()
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].object && !stack[n-1].key {
				if err = w.WritePropertyName(t); err != nil {
					return err
				}
				stack[n-1].key = true
				continue
			}
			if err = w.WriteValue(scalar.String(t)); err != nil {
				return err
			}
			completed()
		case json.Number:
			v, err2 := numberValue(t)
			if err2 != nil {
				return err2
			}
			if err = w.WriteValue(v); err != nil {
				return err
			}
			completed()
		case bool:
			if err = w.WriteValue(scalar.Bool(t)); err != nil {
				return err
			}
			completed()
		case nil:
			if err = w.WriteValue(scalar.Null()); err != nil {
				return err
			}
			completed()
		}
	}
}

// numberValue converts a decoder number without losing its text: integers
// stay integers, other numbers become decimals when their text allows it.
func numberValue(n json.Number) (scalar.Value, error) {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return scalar.Int64(i), nil
	}
	if d, ok := new(inf.Dec).SetString(n.String()); ok {
		return scalar.Decimal(d), nil
	}
	if f, err := n.Float64(); err == nil {
		return scalar.Float64(f), nil
	}
	return scalar.Value{}, fmt.Errorf("unsupported number %q", n)
}

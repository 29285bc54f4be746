// Copyright 2025 The Spellhound Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spell checking server and CLI application.

Spellhound checks words against Hunspell-dialect dictionaries (.aff/.dic
pairs) and produces ranked correction candidates. It can operate as a
MessagePack IPC server for integration with text editors, or as a CLI
application for testing and debugging.

# Usage

Start the server with a dictionary:

	spellhound -dict /usr/share/hunspell/en_US

Run in CLI mode for interactive testing:

	spellhound -c -dict ./en_US -limit 10

Words are read one per line in CLI mode; correct words answer "ok", wrong
ones print their suggestions.

# Configuration

Runtime configuration is managed through a TOML file:

	[server]
	max_limit = 64
	max_word_len = 180

	[dict]
	path = "/usr/share/hunspell/en_US"

	[cli]
	default_limit = 15
	default_suggest = true

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout:

	{"id": "req1", "a": "check", "w": "hello"}
	{"id": "req1", "ok": true, "t": 21}

	{"id": "req2", "a": "suggest", "w": "helo", "l": 5}
	{"id": "req2", "s": ["hello", "help", "halo"], "c": 3, "t": 650}
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/spellhound/spellhound/pkg/config"
	"github.com/spellhound/spellhound/pkg/dictionary"
	"github.com/spellhound/spellhound/pkg/server"
	"github.com/spellhound/spellhound/pkg/speller"
)

func main() {
	cliMode := flag.Bool("c", false, "run in interactive CLI mode instead of server mode")
	debugMode := flag.Bool("d", false, "enable debug logging")
	dictPath := flag.String("dict", "", "path of the .aff/.dic pair, without extension")
	configPath := flag.String("config", "", "path to a custom config.toml")
	limit := flag.Int("limit", 0, "maximum number of suggestions")
	flag.Parse()

	log.SetOutput(os.Stderr)
	if *debugMode {
		log.SetLevel(log.DebugLevel)
	}

	cfg, cfgPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Loading config: %v", err)
	}
	if cfgPath != "" {
		log.Debugf("Using config: %s", cfgPath)
	}

	path := *dictPath
	if path == "" {
		path = cfg.Dict.Path
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "no dictionary given: pass -dict or set dict.path in config.toml")
		os.Exit(2)
	}

	data, err := dictionary.LoadPath(path)
	if err != nil {
		log.Fatalf("Loading dictionary %s: %v", path, err)
	}
	spell := speller.New(data)

	if *cliMode {
		n := *limit
		if n < 1 {
			n = cfg.CLI.DefaultLimit
		}
		runCLI(spell, n, cfg.CLI.DefaultSuggest)
		return
	}

	srv := server.New(spell, cfg.Server.MaxLimit)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// runCLI reads words from stdin, one per line, and reports the verdict and
// suggestions for each.
func runCLI(spell *speller.Speller, limit int, suggest bool) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if spell.Spell(word) {
			fmt.Println("ok")
			continue
		}
		if !suggest {
			fmt.Println("wrong")
			continue
		}
		sugs := spell.Suggest(word)
		if len(sugs) > limit {
			sugs = sugs[:limit]
		}
		if len(sugs) == 0 {
			fmt.Println("wrong, no suggestions")
			continue
		}
		fmt.Printf("wrong, did you mean: %s\n", strings.Join(sugs, ", "))
	}
	if err := scanner.Err(); err != nil {
		log.Errorf("Reading stdin: %v", err)
	}
}

package cmd

import (
	"testing"
)

func TestRootCmd_Wiring(t *testing.T) {
	app := NewApp()
	root := app.newRootCmd()

	if root.Use != "plz [request...]" {
		t.Errorf("root use = %q", root.Use)
	}
	if !root.SilenceUsage || !root.SilenceErrors {
		t.Error("root command must not print usage or errors itself")
	}

	for _, name := range []string{"verbose", "token-limit"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q not registered", name)
		}
	}
	if root.Flags().Lookup("force") == nil {
		t.Error("flag force not registered")
	}

	var haveCommit, haveConfig bool
	for _, sub := range root.Commands() {
		switch sub.Name() {
		case "commit":
			haveCommit = true
			for _, name := range []string{"gitmoji", "hint"} {
				if sub.Flags().Lookup(name) == nil {
					t.Errorf("commit flag %q not registered", name)
				}
			}
		case "config":
			haveConfig = true
		}
	}
	if !haveCommit || !haveConfig {
		t.Errorf("subcommands missing: commit=%v config=%v", haveCommit, haveConfig)
	}
}

func TestRootCmd_FlagShorthands(t *testing.T) {
	app := NewApp()
	root := app.newRootCmd()

	tests := []struct {
		flag      string
		shorthand string
	}{
		{"verbose", "v"},
		{"token-limit", "t"},
		{"force", "y"},
	}

	for _, tt := range tests {
		f := root.Flags().Lookup(tt.flag)
		if f == nil {
			f = root.PersistentFlags().Lookup(tt.flag)
		}
		if f == nil {
			t.Errorf("flag %q not found", tt.flag)
			continue
		}
		if f.Shorthand != tt.shorthand {
			t.Errorf("flag %q shorthand = %q, want %q", tt.flag, f.Shorthand, tt.shorthand)
		}
	}
}

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantAction flagAction
		wantFile   string
		wantConfig string
		wantDebug  bool
		wantLevel  string
		wantErr    string
	}{
		{name: "no args", args: nil, wantAction: actionRun},
		{name: "file", args: []string{"notes.txt"}, wantAction: actionRun, wantFile: "notes.txt"},
		{
			name:       "short flags",
			args:       []string{"-c", "my.toml", "-d", "a.go"},
			wantAction: actionRun,
			wantFile:   "a.go",
			wantConfig: "my.toml",
			wantDebug:  true,
		},
		{name: "log level", args: []string{"-log-level", "warn"}, wantAction: actionRun, wantLevel: "warn"},
		{name: "bad log level", args: []string{"-log-level", "loud"}, wantErr: "invalid log level"},
		{name: "two files", args: []string{"a", "b"}, wantErr: "only one file"},
		{name: "version", args: []string{"-v"}, wantAction: actionVersion},
		{name: "help", args: []string{"-help"}, wantAction: actionHelp},
		{name: "unknown flag", args: []string{"-x"}, wantErr: "flag provided but not defined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			opts, action, err := parseFlags(tt.args, &out)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("parseFlags() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if action != tt.wantAction {
				t.Errorf("action = %v, want %v", action, tt.wantAction)
			}
			if opts.File != tt.wantFile {
				t.Errorf("File = %q, want %q", opts.File, tt.wantFile)
			}
			if opts.ConfigPath != tt.wantConfig {
				t.Errorf("ConfigPath = %q, want %q", opts.ConfigPath, tt.wantConfig)
			}
			if opts.Debug != tt.wantDebug {
				t.Errorf("Debug = %v, want %v", opts.Debug, tt.wantDebug)
			}
			if opts.LogLevel != tt.wantLevel {
				t.Errorf("LogLevel = %q, want %q", opts.LogLevel, tt.wantLevel)
			}
		})
	}
}

func TestParseFlagsHelpPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	if _, _, err := parseFlags([]string{"-h"}, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Usage: cellpad") {
		t.Errorf("usage = %q", out.String())
	}
}

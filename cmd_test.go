package main

import (
	"testing"
)

func TestRootCommandWiring(t *testing.T) {
	root := NewRootCmd()

	expected := []string{"send", "get", "sync", "list", "server", "version"}
	for _, name := range expected {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestServerSubcommandWiring(t *testing.T) {
	root := NewRootCmd()

	var server *struct{ names []string }
	for _, cmd := range root.Commands() {
		if cmd.Name() == "server" {
			names := []string{}
			for _, sub := range cmd.Commands() {
				names = append(names, sub.Name())
			}
			server = &struct{ names []string }{names}
		}
	}
	if server == nil {
		t.Fatal("server subcommand not registered")
	}

	for _, want := range []string{"add", "list", "remove", "default"} {
		found := false
		for _, name := range server.names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("server command missing subcommand %q", want)
		}
	}
}

func TestValidatePortInput(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"blank means default", "", false},
		{"standard port", "22", false},
		{"high port", "65535", false},
		{"non-numeric", "ssh", true},
		{"out of range", "70000", true},
		{"negative", "-1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePortInput(tt.input)
			if (err != nil) != tt.expectErr {
				t.Errorf("validatePortInput(%q) error = %v, expectErr %v", tt.input, err, tt.expectErr)
			}
		})
	}
}

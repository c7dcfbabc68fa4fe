//go:build linux && !tinygo

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestDumpErrors(t *testing.T) {
	dir := t.TempDir()
	noPRCI := filepath.Join(dir, "no-prci.dtb")
	blob := buildDTB(dtbNode{props: []dtbProp{{"compatible", []byte("sifive,fu540-c000\x00")}}})
	if err := os.WriteFile(noPRCI, blob, 0o644); err != nil {
		t.Fatal(err)
	}

	smallWindow := filepath.Join(dir, "small-window.dtb")
	blob = buildDTB(prciNode(prciCompatible, cells(0, 0x10000000, 0)))
	if err := os.WriteFile(smallWindow, blob, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		err  error
	}{
		{"noDeviceTreeNoMem", []string{"dump"}, os.ErrNotExist},
		{"noPRCINode", []string{"dump", "--dtb", noPRCI}, ErrNoPRCI},
		{"baseSkipsDeviceTree", []string{"dump", "--dtb", noPRCI, "--base", "0x10000000"}, os.ErrNotExist},
		{"emptyWindow", []string{"dump", "--dtb", smallWindow}, ErrBadReg},
		{"badBase", []string{"dump", "--base", "prci"}, strconv.ErrSyntax},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := run(t, test.args...)
			if !errors.Is(err, test.err) {
				t.Errorf("expected %v, got %v", test.err, err)
			}
		})
	}
}

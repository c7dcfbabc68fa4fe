package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/platinasystems/fdt"

	"omibyte.io/prci/soc/sifive/fu540/prci"
)

const (
	fdtMagic       = 0xd00dfeed
	prciCompatible = "sifive,fu540-c000-prci"

	// prciWindow is the smallest reg size that covers every PRCI register.
	prciWindow = prci.OffsetDEVICESRESETREG + 4
)

var (
	ErrNoDeviceTree = errors.New("not a flattened device tree")
	ErrNoPRCI       = errors.New("no PRCI node in device tree")
	ErrBadReg       = errors.New("malformed reg property")
)

// region is a physical address window taken from a reg property.
type region struct {
	Base uintptr
	Size uint64
}

// findPRCI returns the register window of the first PRCI node in blob.
func findPRCI(blob []byte) (r region, err error) {
	if len(blob) < 40 || binary.BigEndian.Uint32(blob) != fdtMagic {
		return region{}, ErrNoDeviceTree
	}
	if size := binary.BigEndian.Uint32(blob[4:]); int(size) > len(blob) {
		return region{}, fmt.Errorf("blob truncated at %d of %d bytes: %w", len(blob), size, ErrNoDeviceTree)
	}

	t := &fdt.Tree{Debug: false, IsLittleEndian: false}
	defer func() {
		// The parser indexes the blob without bounds checks
		if recover() != nil {
			r, err = region{}, ErrNoDeviceTree
		}
	}()
	t.Parse(blob)
	if t.RootNode == nil {
		return region{}, ErrNoDeviceTree
	}

	// EachProperty matches on substrings so the list is checked entry by entry.
	matches := map[*fdt.Node]bool{}
	t.EachProperty("compatible", prciCompatible, func(n *fdt.Node, name, value string) {
		for _, c := range strings.Split(value, "\x00") {
			if c == prciCompatible {
				matches[n] = true
			}
		}
	})
	if len(matches) == 0 {
		return region{}, ErrNoPRCI
	}

	node, addressCells, sizeCells := findNode(t.RootNode, matches, 2, 1)
	if node == nil {
		return region{}, ErrNoPRCI
	}
	if r, err = decodeReg(node.Properties["reg"], addressCells, sizeCells); err != nil {
		return region{}, err
	}
	if r.Size < prciWindow {
		return region{}, fmt.Errorf("%#x byte window at %#x: %w", r.Size, r.Base, ErrBadReg)
	}
	return r, nil
}

// findNode walks the tree below n for one of matches and returns it with the
// cell sizes its parent declares.
func findNode(n *fdt.Node, matches map[*fdt.Node]bool, addressCells, sizeCells int) (*fdt.Node, int, int) {
	if matches[n] {
		return n, addressCells, sizeCells
	}
	childAddress, childSize := cellsOf(n)
	for _, c := range n.Children {
		if found, a, s := findNode(c, matches, childAddress, childSize); found != nil {
			return found, a, s
		}
	}
	return nil, 0, 0
}

// cellsOf returns the #address-cells and #size-cells n declares for its
// children. Missing properties take their default and are not inherited.
func cellsOf(n *fdt.Node) (addressCells, sizeCells int) {
	addressCells, sizeCells = 2, 1
	if v, ok := n.Properties["#address-cells"]; ok && len(v) == 4 {
		addressCells = int(binary.BigEndian.Uint32(v))
	}
	if v, ok := n.Properties["#size-cells"]; ok && len(v) == 4 {
		sizeCells = int(binary.BigEndian.Uint32(v))
	}
	return
}

// decodeReg decodes the first (address, size) pair of a reg property.
func decodeReg(reg []byte, addressCells, sizeCells int) (region, error) {
	if addressCells < 1 || addressCells > 2 || sizeCells > 2 || sizeCells < 0 {
		return region{}, fmt.Errorf("%d address cells, %d size cells: %w", addressCells, sizeCells, ErrBadReg)
	}
	if len(reg) < 4*(addressCells+sizeCells) {
		return region{}, fmt.Errorf("%d bytes: %w", len(reg), ErrBadReg)
	}

	cells := func(n int) (v uint64) {
		for i := 0; i < n; i++ {
			v = v<<32 | uint64(binary.BigEndian.Uint32(reg))
			reg = reg[4:]
		}
		return v
	}
	return region{
		Base: uintptr(cells(addressCells)),
		Size: cells(sizeCells),
	}, nil
}

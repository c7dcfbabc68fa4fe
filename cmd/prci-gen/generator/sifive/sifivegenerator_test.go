package sifive

import (
	"encoding/xml"
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/exp/slices"

	"omibyte.io/prci/cmd/prci-gen/svd"
)

const fu540SVD = "../../../../soc/sifive/fu540/fu540.svd"

func loadDevice(t *testing.T, src []byte) svd.DeviceElement {
	t.Helper()
	var device svd.DeviceElement
	if err := xml.Unmarshal(src, &device); err != nil {
		t.Fatalf("xml decode error: %v", err)
	}
	return device
}

// declarations returns the sorted top-level names of a Go file. Methods are
// qualified with their receiver type.
func declarations(t *testing.T, fname string) []string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), fname, nil, 0)
	if err != nil {
		t.Fatalf("%s: %v", fname, err)
	}

	var names []string
	for _, decl := range f.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			name := decl.Name.Name
			if decl.Recv != nil {
				recv := decl.Recv.List[0].Type
				if star, ok := recv.(*ast.StarExpr); ok {
					recv = star.X
				}
				name = recv.(*ast.Ident).Name + "." + name
			}
			names = append(names, name)
		case *ast.GenDecl:
			for _, spec := range decl.Specs {
				switch spec := spec.(type) {
				case *ast.TypeSpec:
					names = append(names, spec.Name.Name)
				case *ast.ValueSpec:
					for _, n := range spec.Names {
						names = append(names, n.Name)
					}
				}
			}
		}
	}
	slices.Sort(names)
	return names
}

func generateFU540(t *testing.T) string {
	t.Helper()
	src, err := os.ReadFile(fu540SVD)
	if err != nil {
		t.Fatal(err)
	}
	out := t.TempDir()
	if err := NewGenerator(loadDevice(t, src), fu540SVD).Generate(out); err != nil {
		t.Fatalf("generator error: %v", err)
	}
	return out
}

func TestGenerateMatchesCheckedIn(t *testing.T) {
	out := generateFU540(t)

	for _, pkg := range []string{"prci", "uart"} {
		t.Run(pkg, func(t *testing.T) {
			generated := declarations(t, filepath.Join(out, pkg, pkg+".go"))
			checkedIn := declarations(t, filepath.Join("../../../../soc/sifive/fu540", pkg, pkg+".go"))
			if !slices.Equal(generated, checkedIn) {
				for _, name := range generated {
					if !slices.Contains(checkedIn, name) {
						t.Errorf("%s is generated but not checked in", name)
					}
				}
				for _, name := range checkedIn {
					if !slices.Contains(generated, name) {
						t.Errorf("%s is checked in but not generated", name)
					}
				}
			}
		})
	}
}

func TestGenerateAccess(t *testing.T) {
	out := generateFU540(t)
	prci := declarations(t, filepath.Join(out, "prci", "prci.go"))
	uart := declarations(t, filepath.Join(out, "uart", "uart.go"))

	tests := []struct {
		decls   []string
		name    string
		present bool
	}{
		{prci, "PLLCFG0.GetLOCK", true},
		{prci, "PLLCFG0.WithLOCK", false},
		{prci, "PLLCFG0Register.GetLOCK", true},
		{prci, "PLLCFG0Register.SetLOCK", false},
		{prci, "PLLCFG0Register.SetDIVF", true},
		{prci, "HFXOSCCFG.WithREADY", false},
		{prci, "HFXOSCCFGRegister.SetENABLE", true},
		{prci, "PLLCFG1OutputENABLE", true},
		{prci, "CORECLKSELSourceHFCLK", true},
		{prci, "BaseAddress", true},
		{prci, "DDRPLLCFG0", false},
		{prci, "PLLCFG0ReadOnlyMsk", true},
		{prci, "HFXOSCCFGReadOnlyMsk", true},
		{prci, "PLLCFG1ReadOnlyMsk", false},
		{uart, "TXDATAReadOnlyMsk", true},
		{uart, "RXDATAReadOnlyMsk", false},
		{uart, "RXDATARegister.Get", true},
		{uart, "RXDATARegister.Set", false},
		{uart, "IPRegister.Set", false},
		{uart, "TXDATA.WithFULL", false},
		{uart, "TXDATARegister.SetDATA", true},
		{uart, "BaseAddressUART0", true},
		{uart, "BaseAddressUART1", true},
		{uart, "BaseAddress", false},
	}

	for _, test := range tests {
		if got := slices.Contains(test.decls, test.name); got != test.present {
			t.Errorf("%s: expected declared=%v, got %v", test.name, test.present, got)
		}
	}
}

func TestGenerateMasksReadOnlyFields(t *testing.T) {
	out := generateFU540(t)
	src, err := os.ReadFile(filepath.Join(out, "prci", "prci.go"))
	if err != nil {
		t.Fatal(err)
	}

	for _, line := range []string{
		"PLLCFG0ReadOnlyMsk = 0x80000000",
		"HFXOSCCFGReadOnlyMsk = 0x20000000",
		"r.reg.Set(uint32(value &^ PLLCFG0ReadOnlyMsk))",
		"r.reg.Set(uint32(value))",
		"return r.reg.HasBits(1 << PLLCFG0LOCKPos)",
		"r.reg.SetBits(1 << PLLCFG0BYPASSPos)",
		"r.reg.ReplaceBits(uint32(value), PLLCFG0DIVFMsk, PLLCFG0DIVFPos)",
	} {
		if !strings.Contains(string(src), line) {
			t.Errorf("generated PRCI package is missing %q", line)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	const header = `<device><name>TEST</name><series>FU540</series><size>32</size><access>read-write</access><peripherals>`
	const footer = `</peripherals></device>`

	tests := []struct {
		name string
		body string
		err  error
	}{
		{
			name: "unknownPeripheral",
			body: `<peripheral><name>P</name><baseAddress>0</baseAddress></peripheral>
				<peripheral derivedFrom="Q"><name>P1</name><baseAddress>0x100</baseAddress></peripheral>`,
			err: ErrDerivedFrom,
		},
		{
			name: "unknownRegister",
			body: `<peripheral><name>P</name><baseAddress>0</baseAddress><registers>
				<register derivedFrom="B"><name>A</name><addressOffset>0</addressOffset></register>
				</registers></peripheral>`,
			err: ErrDerivedFrom,
		},
		{
			name: "conflictingLayouts",
			body: `<peripheral><name>P</name><baseAddress>0</baseAddress><registers>
				<register><name>A</name><displayName>CFG</displayName><addressOffset>0</addressOffset>
				<fields><field><name>X</name><bitOffset>0</bitOffset><bitWidth>1</bitWidth></field></fields></register>
				<register><name>B</name><displayName>CFG</displayName><addressOffset>4</addressOffset>
				<fields><field><name>X</name><bitOffset>1</bitOffset><bitWidth>1</bitWidth></field></fields></register>
				</registers></peripheral>`,
			err: ErrLayout,
		},
		{
			name: "overlappingFields",
			body: `<peripheral><name>P</name><baseAddress>0</baseAddress><registers>
				<register><name>A</name><addressOffset>0</addressOffset><fields>
				<field><name>X</name><bitOffset>0</bitOffset><bitWidth>4</bitWidth></field>
				<field><name>Y</name><bitOffset>3</bitOffset><bitWidth>2</bitWidth></field>
				</fields></register>
				</registers></peripheral>`,
			err: ErrLayout,
		},
		{
			name: "fieldOutOfRange",
			body: `<peripheral><name>P</name><baseAddress>0</baseAddress><registers>
				<register><name>A</name><addressOffset>0</addressOffset><fields>
				<field><name>X</name><bitOffset>30</bitOffset><bitWidth>4</bitWidth></field>
				</fields></register>
				</registers></peripheral>`,
			err: ErrLayout,
		},
		{
			name: "narrowRegister",
			body: `<peripheral><name>P</name><baseAddress>0</baseAddress><registers>
				<register><name>A</name><addressOffset>0</addressOffset><size>16</size></register>
				</registers></peripheral>`,
			err: ErrUnsupported,
		},
		{
			name: "registerArray",
			body: `<peripheral><name>P</name><baseAddress>0</baseAddress><registers>
				<register><name>A</name><addressOffset>0</addressOffset><dim>4</dim></register>
				</registers></peripheral>`,
			err: ErrUnsupported,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			device := loadDevice(t, []byte(header+test.body+footer))
			err := NewGenerator(device, "test.svd").Generate(t.TempDir())
			if !errors.Is(err, test.err) {
				t.Errorf("expected %v, got %v", test.err, err)
			}
		})
	}
}

func TestDerivedRegisterInheritsLayout(t *testing.T) {
	src := []byte(`<device><name>TEST</name><series>FU540</series><size>32</size><access>read-write</access><peripherals>
		<peripheral><name>P</name><baseAddress>0x1000</baseAddress><registers>
		<register><name>B</name><addressOffset>4</addressOffset><resetValue>0x5</resetValue><access>read-only</access>
		<fields><field><name>X</name><bitOffset>0</bitOffset><bitWidth>3</bitWidth></field></fields></register>
		<register derivedFrom="B"><name>A</name><addressOffset>0</addressOffset></register>
		</registers></peripheral>
		</peripherals></device>`)
	out := t.TempDir()
	if err := NewGenerator(loadDevice(t, src), "test.svd").Generate(out); err != nil {
		t.Fatalf("generator error: %v", err)
	}

	decls := declarations(t, filepath.Join(out, "p", "p.go"))
	for _, name := range []string{"A.GetX", "ARegister.Get", "ResetA", "OffsetA"} {
		if !slices.Contains(decls, name) {
			t.Errorf("%s was not generated", name)
		}
	}
	for _, name := range []string{"A.WithX", "ARegister.Set"} {
		if slices.Contains(decls, name) {
			t.Errorf("%s should not be generated for a read-only register", name)
		}
	}
}

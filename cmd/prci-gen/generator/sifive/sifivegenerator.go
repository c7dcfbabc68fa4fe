package sifive

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/tools/imports"

	"omibyte.io/prci/cmd/prci-gen/generator"
	"omibyte.io/prci/cmd/prci-gen/svd"
)

var (
	ErrUnsupported = errors.New("unsupported svd construct")
	ErrDerivedFrom = errors.New("unknown derivedFrom target")
	ErrLayout      = errors.New("invalid field layout")
)

const mmioImport = "omibyte.io/prci/mmio"

var identifierRegex = regexp.MustCompile(`[^A-Za-z0-9_]`)

type sifivegen struct {
	device svd.DeviceElement
	source string
}

// NewGenerator returns a generator that writes one package per peripheral
// group of device. source names the SVD file in the generated header.
func NewGenerator(device svd.DeviceElement, source string) generator.Generator {
	return &sifivegen{
		device: device,
		source: source,
	}
}

func (s *sifivegen) Generate(out string) error {
	for _, periph := range s.device.Peripherals.Elements {
		// Derived peripherals share the package of the peripheral they derive from
		if len(periph.DerivedFrom) > 0 {
			if _, ok := s.device.Peripherals.Find(periph.DerivedFrom); !ok {
				return fmt.Errorf("%s: %w %q", periph.Name, ErrDerivedFrom, periph.DerivedFrom)
			}
			continue
		}

		if err := s.generatePeripheral(periph, out); err != nil {
			return err
		}
	}
	return nil
}

func (s *sifivegen) generatePeripheral(periph svd.PeripheralElement, out string) (err error) {
	var w strings.Builder

	name := periph.Group
	if len(name) == 0 {
		name = periph.Name
	}
	pkg := strings.ToLower(cleanIdentifier(name))

	registers, err := s.resolveRegisters(periph)
	if err != nil {
		return err
	}

	// Collect every instance of this register block
	series := []svd.PeripheralElement{periph}
	for _, p := range s.device.Peripherals.Elements {
		if p.DerivedFrom == periph.Name {
			series = append(series, p)
		}
	}

	if err = s.writePreamble(&w, pkg, name, periph.Description); err != nil {
		return err
	}
	fmt.Fprintf(&w, "import %q\n\n", mmioImport)

	if len(series) == 1 {
		fmt.Fprintf(&w, "// BaseAddress is the physical address of the %s register block.\n", periph.Name)
		fmt.Fprintf(&w, "const BaseAddress = %#x\n\n", periph.BaseAddress)
	} else {
		fmt.Fprintln(&w, "// Physical addresses of each instance of the register block.")
		fmt.Fprintln(&w, "const (")
		for _, p := range series {
			fmt.Fprintf(&w, "BaseAddress%s = %#x\n", cleanIdentifier(p.Name), p.BaseAddress)
		}
		fmt.Fprint(&w, ")\n\n")
	}

	fmt.Fprintln(&w, "// Register offsets from the base address.")
	fmt.Fprintln(&w, "const (")
	for _, r := range registers {
		fmt.Fprintf(&w, "Offset%s = %#x\n", cleanIdentifier(r.Name), r.AddressOffset)
	}
	fmt.Fprint(&w, ")\n\n")

	fmt.Fprintln(&w, "// Register values after reset.")
	fmt.Fprintln(&w, "const (")
	for _, r := range registers {
		resetValue := s.device.ResetValue
		if r.ResetValue != nil {
			resetValue = *r.ResetValue
		}
		fmt.Fprintf(&w, "Reset%s = %#x\n", cleanIdentifier(r.Name), resetValue)
	}
	fmt.Fprint(&w, ")\n\n")

	// Declare the register block and its constructor
	fmt.Fprintf(&w, "// RegisterBlock is the %s register block.\n", name)
	fmt.Fprintln(&w, "type RegisterBlock struct {")
	for _, r := range registers {
		if len(r.Description) > 0 {
			fmt.Fprintf(&w, "// %s %s\n", cleanIdentifier(r.Name), cleanText(r.Description))
		}
		fmt.Fprintf(&w, "%s %sRegister\n", cleanIdentifier(r.Name), typeName(r))
	}
	fmt.Fprint(&w, "}\n\n")

	fmt.Fprintln(&w, "// New binds a RegisterBlock to the block at base on bus.")
	fmt.Fprintln(&w, "func New(bus mmio.Bus, base uintptr) *RegisterBlock {")
	fmt.Fprintln(&w, "return &RegisterBlock{")
	for _, r := range registers {
		rname := cleanIdentifier(r.Name)
		fmt.Fprintf(&w, "%s: %sRegister{reg: mmio.Register32{Bus: bus, Addr: base + Offset%s}},\n", rname, typeName(r), rname)
	}
	fmt.Fprintln(&w, "}")
	fmt.Fprint(&w, "}\n\n")

	// Registers sharing a display name share a single type
	layouts := map[string][]string{}
	for _, r := range registers {
		typename := typeName(r)
		layout := fieldLayout(r)
		if existing, ok := layouts[typename]; ok {
			if !slices.Equal(existing, layout) {
				return fmt.Errorf("%s.%s: %w: layout differs from other %s registers", periph.Name, r.Name, ErrLayout, typename)
			}
			continue
		}
		layouts[typename] = layout

		impl, err := s.generateRegisterType(typename, r)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", periph.Name, r.Name, err)
		}
		fmt.Fprintln(&w, impl)
	}

	// Format the final output
	fname := filepath.Join(out, pkg, pkg+".go")
	if err = os.MkdirAll(filepath.Dir(fname), 0750); err != nil {
		return err
	}

	buf, err := imports.Process(fname, []byte(w.String()), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return fmt.Errorf("error formatting %s: %v", fname, err)
	}

	return os.WriteFile(fname, buf, 0640)
}

func (s *sifivegen) writePreamble(w io.Writer, pkg, name, description string) error {
	if _, err := fmt.Fprintf(w, "// Code generated by prci-gen from %s. DO NOT EDIT.\n\n", filepath.Base(s.source)); err != nil {
		return err
	}

	if len(description) > 0 {
		description = strings.TrimSuffix(cleanText(description), ".")
		if _, err := fmt.Fprintf(w, "// Package %s describes the %s peripheral: %s.\n", pkg, name, description); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "package %s\n\n", pkg); err != nil {
		return err
	}

	return nil
}

// resolveRegisters applies derivedFrom and device defaults to the registers of
// periph and returns them ordered by address.
func (s *sifivegen) resolveRegisters(periph svd.PeripheralElement) ([]svd.RegisterElement, error) {
	registers := slices.Clone(periph.Registers.RegisterElements)
	for i, r := range registers {
		if r.Count > 0 {
			return nil, fmt.Errorf("%s.%s: register arrays: %w", periph.Name, r.Name, ErrUnsupported)
		}

		if len(r.DerivedFrom) > 0 {
			j, ok := periph.Registers.Find(r.DerivedFrom)
			if !ok {
				return nil, fmt.Errorf("%s.%s: %w %q", periph.Name, r.Name, ErrDerivedFrom, r.DerivedFrom)
			}

			base := periph.Registers.RegisterElements[j]
			if len(r.Fields.Elements) == 0 {
				r.Fields = base.Fields
			}
			if len(r.DisplayName) == 0 {
				r.DisplayName = base.DisplayName
			}
			if len(r.Description) == 0 {
				r.Description = base.Description
			}
			if r.Size == 0 {
				r.Size = base.Size
			}
			if len(r.Access) == 0 {
				r.Access = base.Access
			}
			if r.ResetValue == nil {
				r.ResetValue = base.ResetValue
			}
		}

		if r.Size == 0 {
			r.Size = s.device.RegisterSize
		}
		if r.Size != 32 {
			return nil, fmt.Errorf("%s.%s: %d-bit registers: %w", periph.Name, r.Name, r.Size, ErrUnsupported)
		}

		if len(r.Access) == 0 {
			r.Access = s.device.DefaultAccess
		}
		registers[i] = r
	}

	slices.SortStableFunc(registers, func(a, b svd.RegisterElement) bool {
		return a.AddressOffset < b.AddressOffset
	})

	return registers, nil
}

func (s *sifivegen) generateRegisterType(typename string, register svd.RegisterElement) (string, error) {
	var buf strings.Builder

	fields := slices.Clone(register.Fields.Elements)
	slices.SortStableFunc(fields, func(a, b svd.FieldElement) bool {
		return a.BitOffset < b.BitOffset
	})

	// Reject fields that overlap or fall outside of the register
	var used uint64
	for _, field := range fields {
		if field.BitWidth == 0 || field.BitOffset+field.BitWidth > register.Size {
			return "", fmt.Errorf("field %s: %w", field.Name, ErrLayout)
		}
		bits := uint64(mask(field.BitWidth)) << field.BitOffset
		if used&bits != 0 {
			return "", fmt.Errorf("field %s overlaps: %w", field.Name, ErrLayout)
		}
		used |= bits
	}

	// Declare the value type
	fmt.Fprintf(&buf, "// %s is the value of a %s register.\n", typename, typename)
	fmt.Fprintf(&buf, "type %s uint32\n\n", typename)

	// Bits of a writable register that software cannot change
	var readOnly uint32
	if register.Access.Writable() {
		for _, field := range fields {
			if !fieldAccess(register, field).Writable() {
				readOnly |= mask(field.BitWidth) << field.BitOffset
			}
		}
	}
	readOnlyMsk := typename + "ReadOnlyMsk"

	if len(fields) > 0 {
		fmt.Fprintln(&buf, "const (")
		for _, field := range fields {
			if len(field.Description) > 0 {
				fmt.Fprintf(&buf, "// %s%s %s\n", typename, field.Name, cleanText(field.Description))
			}
			fmt.Fprintf(&buf, "%s%sPos = %d\n", typename, field.Name, field.BitOffset)
			fmt.Fprintf(&buf, "%s%sMsk = %#x\n", typename, field.Name, mask(field.BitWidth))
		}
		if readOnly != 0 {
			fmt.Fprintf(&buf, "// %s masks the read-only fields out of whole-register writes\n", readOnlyMsk)
			fmt.Fprintf(&buf, "%s = %#x\n", readOnlyMsk, readOnly)
		}
		fmt.Fprint(&buf, ")\n\n")
	}

	// Create enumerated types
	evMap := map[string]string{}
	for _, field := range fields {
		if len(field.EnumeratedValues.Elements) > 0 {
			evTypename, evImpl := s.generateEnumeratedValuesType(typename, field)

			// Map the field name to the enumerated type's typename
			evMap[field.Name] = evTypename

			fmt.Fprintln(&buf, evImpl)
		}
	}

	// Create a getter and a copy-with method for each field on the value type
	for _, field := range fields {
		access := fieldAccess(register, field)
		valueType, hasEv := evMap[field.Name]
		if !hasEv {
			valueType = typeForBitWidth(field.BitWidth)
		}
		pos := typename + field.Name + "Pos"
		msk := typename + field.Name + "Msk"

		if access.Readable() {
			fmt.Fprintf(&buf, "func (v %s) Get%s() %s {\n", typename, field.Name, valueType)
			if valueType == "bool" {
				fmt.Fprintf(&buf, "return v&(1<<%s) != 0\n", pos)
			} else {
				fmt.Fprintf(&buf, "return %s((v >> %s) & %s)\n", valueType, pos, msk)
			}
			fmt.Fprint(&buf, "}\n\n")
		}

		if access.Writable() {
			fmt.Fprintf(&buf, "func (v %s) With%s(value %s) %s {\n", typename, field.Name, valueType, typename)
			if valueType == "bool" {
				fmt.Fprintln(&buf, "if value {")
				fmt.Fprintf(&buf, "return v | 1<<%s\n", pos)
				fmt.Fprintln(&buf, "}")
				fmt.Fprintf(&buf, "return v &^ (1 << %s)\n", pos)
			} else {
				fmt.Fprintf(&buf, "return v&^(%s<<%s) | %s(value)&%s<<%s\n", msk, pos, typename, msk, pos)
			}
			fmt.Fprint(&buf, "}\n\n")
		}
	}

	// Declare the register handle
	handle := typename + "Register"
	fmt.Fprintf(&buf, "// %s is a handle to a %s register.\n", handle, typename)
	fmt.Fprintf(&buf, "type %s struct {\nreg mmio.Register32\n}\n\n", handle)

	if register.Access.Readable() {
		fmt.Fprintf(&buf, "func (r %s) Get() %s {\n", handle, typename)
		fmt.Fprintf(&buf, "return %s(r.reg.Get())\n", typename)
		fmt.Fprint(&buf, "}\n\n")
	}

	if register.Access.Writable() {
		fmt.Fprintf(&buf, "func (r %s) Set(value %s) {\n", handle, typename)
		if readOnly != 0 {
			fmt.Fprintf(&buf, "r.reg.Set(uint32(value &^ %s))\n", readOnlyMsk)
		} else {
			fmt.Fprintln(&buf, "r.reg.Set(uint32(value))")
		}
		fmt.Fprint(&buf, "}\n\n")
	}

	for _, field := range fields {
		access := fieldAccess(register, field)
		valueType, hasEv := evMap[field.Name]
		if !hasEv {
			valueType = typeForBitWidth(field.BitWidth)
		}

		pos := typename + field.Name + "Pos"
		msk := typename + field.Name + "Msk"

		if access.Readable() {
			fmt.Fprintf(&buf, "func (r %s) Get%s() %s {\n", handle, field.Name, valueType)
			if valueType == "bool" {
				fmt.Fprintf(&buf, "return r.reg.HasBits(1 << %s)\n", pos)
			} else {
				fmt.Fprintf(&buf, "return %s(r.reg.Get()).Get%s()\n", typename, field.Name)
			}
			fmt.Fprint(&buf, "}\n\n")
		}

		// Field setters are read-modify-write and need the register to be readable
		if access.Writable() && register.Access.Readable() {
			fmt.Fprintf(&buf, "func (r %s) Set%s(value %s) {\n", handle, field.Name, valueType)
			if valueType == "bool" {
				fmt.Fprintln(&buf, "if value {")
				fmt.Fprintf(&buf, "r.reg.SetBits(1 << %s)\n", pos)
				fmt.Fprintln(&buf, "} else {")
				fmt.Fprintf(&buf, "r.reg.ClearBits(1 << %s)\n", pos)
				fmt.Fprintln(&buf, "}")
			} else {
				fmt.Fprintf(&buf, "r.reg.ReplaceBits(uint32(value), %s, %s)\n", msk, pos)
			}
			fmt.Fprint(&buf, "}\n\n")
		}
	}

	return buf.String(), nil
}

func (s *sifivegen) generateEnumeratedValuesType(prefix string, field svd.FieldElement) (string, string) {
	var buf strings.Builder
	ev := field.EnumeratedValues

	name := ev.Name
	if len(name) == 0 {
		name = field.Name
	}
	typename := prefix + cleanIdentifier(name)

	// Declare the type
	fmt.Fprintf(&buf, "type %s uint32\n\n", typename)
	fmt.Fprintln(&buf, "const (")
	// Create the constant values
	for _, value := range ev.Elements {
		if len(value.Description) > 0 {
			fmt.Fprintf(&buf, "// %s %s\n", typename+value.Name, cleanText(value.Description))
		}
		fmt.Fprintf(&buf, "%s %s = %#x\n\n", typename+value.Name, typename, value.Value)
	}
	fmt.Fprintln(&buf, ")")

	return typename, buf.String()
}

func typeName(r svd.RegisterElement) string {
	if len(r.DisplayName) > 0 {
		return cleanIdentifier(r.DisplayName)
	}
	return cleanIdentifier(r.Name)
}

func fieldAccess(register svd.RegisterElement, field svd.FieldElement) svd.Access {
	if len(field.Access) > 0 {
		// Override the access level of the register if explicitly set on the field
		return field.Access
	}
	return register.Access
}

func fieldLayout(r svd.RegisterElement) (layout []string) {
	for _, field := range r.Fields.Elements {
		layout = append(layout, fmt.Sprintf("%s@%d:%d:%s", field.Name, field.BitOffset, field.BitWidth, fieldAccess(r, field)))
	}
	slices.Sort(layout)
	return
}

func typeForBitWidth(width svd.Integer) string {
	switch {
	case width == 1:
		return "bool"
	case width <= 8:
		return "uint8"
	case width <= 16:
		return "uint16"
	default:
		return "uint32"
	}
}

func mask(width svd.Integer) uint32 {
	if width >= 32 {
		return 0xFFFFFFFF
	}
	return 1<<width - 1
}

func cleanIdentifier(s string) string {
	return identifierRegex.ReplaceAllString(s, "")
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

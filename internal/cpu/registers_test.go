package cpu

import (
	"errors"
	"testing"
)

func TestRegisters_Pairs(t *testing.T) {
	var r Registers
	for _, v := range []uint16{0x0000, 0x1234, 0xBEFE, 0xFFFF} {
		for _, p := range []Pair{PairBC, PairDE, PairHL, PairSP} {
			r.setPair(p, v)
			if got := r.pair(p); got != v {
				t.Errorf("%s: expected 0x%04X, got 0x%04X", p, v, got)
			}
		}
	}

	r.SetBC(0x1234)
	if r.B != 0x12 || r.C != 0x34 {
		t.Errorf("expected B=0x12 C=0x34, got B=0x%02X C=0x%02X", r.B, r.C)
	}

	r.SetAF(0x12F0)
	if r.AF() != 0x12F0 {
		t.Errorf("expected AF to be 0x12F0, got 0x%04X", r.AF())
	}
	r.SetAF(0x12FF)
	if r.AF() != 0x12F0 {
		t.Errorf("expected the low nibble of F to be zero, got 0x%04X", r.AF())
	}
}

func TestRegisters_Flags(t *testing.T) {
	var r Registers
	r.setFlags(true, false, true, false)
	if !r.Zero() || r.Subtract() || !r.HalfCarry() || r.Carry() {
		t.Errorf("expected Z and H to be set, got F=0x%02X", r.Flags())
	}
	if r.Flags() != 0xA0 {
		t.Errorf("expected F to be 0xA0, got 0x%02X", r.Flags())
	}
	r.SetCarry(true)
	if r.carryBit() != 1 {
		t.Errorf("expected carry bit to be 1")
	}
	if !r.isFlagsSet(FlagZero, FlagCarry) || r.isFlagsNotSet(FlagHalfCarry) {
		t.Errorf("unexpected flag tests for F=0x%02X", r.Flags())
	}
}

func TestOperand_ReadWrite(t *testing.T) {
	c, b := newTestCPU()

	for i, o := range operands {
		c.write8(o, uint8(0x10+i))
	}
	// writing H and L moved HL, so (HL) is at 0x1415
	if b.mem[0x1415] != 0x16 {
		t.Errorf("expected (HL) write to reach the bus, got 0x%02X", b.mem[0x1415])
	}
	for i, o := range operands {
		if got := c.read8(o); got != uint8(0x10+i) {
			t.Errorf("%s: expected 0x%02X, got 0x%02X", o, 0x10+i, got)
		}
	}
	if !OperandHL.IsMemory() || OperandA.IsMemory() {
		t.Errorf("expected only (HL) to be a memory operand")
	}
}

func TestInvalidIndex(t *testing.T) {
	var r Registers
	for _, tt := range []struct {
		name string
		what string
		fn   func()
	}{
		{"register", "register", func() { operandIndex(8) }},
		{"bit", "bit", func() { checkBit(8) }},
		{"pair", "register pair", func() { r.pair(Pair(9)) }},
		{"set pair", "register pair", func() { r.setPair(Pair(9), 0x1234) }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				var indexErr *InvalidIndexError
				if !ok || !errors.As(err, &indexErr) {
					t.Fatalf("expected *InvalidIndexError panic, got %v", err)
				}
				if indexErr.What != tt.what {
					t.Errorf("expected %s index error, got %s", tt.what, indexErr.What)
				}
				if indexErr.Error() == "" {
					t.Errorf("expected a message")
				}
			}()
			tt.fn()
		})
	}
	if operandIndex(6) != OperandHL {
		t.Errorf("expected index 6 to be (HL)")
	}
}

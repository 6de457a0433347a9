package cpu

// InterruptCycles is the number of machine cycles taken to
// dispatch an interrupt to its handler.
const InterruptCycles = 5

// clock tracks the machine cycles owed by the instruction in
// flight. The tick that fetches an instruction is its first
// cycle, so an instruction costing n cycles leaves n-1 owed.
type clock struct {
	owed   uint8  // cycles left before the next fetch
	cycles uint64 // total machine cycles ticked
}

// ready returns true if no cycles are owed.
func (k *clock) ready() bool {
	return k.owed == 0
}

// consume consumes one owed cycle.
func (k *clock) consume() {
	k.owed--
}

// charge records the cost of an instruction that has just been
// fetched on the current tick.
func (k *clock) charge(cost uint8) {
	if cost == 0 {
		return
	}
	k.owed = cost - 1
}

// Owed returns the number of cycles left before the CPU will
// fetch the next instruction.
func (c *CPU) Owed() uint8 {
	return c.owed
}

// Cycles returns the total number of machine cycles ticked.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

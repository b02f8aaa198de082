package uci

import "strconv"

// Option is a UCI-settable engine parameter, reported via "option name
// ... type ..." at startup and changed via "setoption name ... value
// ...". Grounded on the teacher's Option interface in pkg/uci/option.go;
// narrowed here since this core has nothing tunable beyond Hash, which
// it accepts and otherwise ignores (there is no transposition table to
// size, since search is out of scope per spec.md §1).
type Option interface {
	Name() string
	Report() string
	Set(value string) error
}

// SpinOption is an integer-valued Option bounded to [Min, Max].
type SpinOption struct {
	name             string
	Default, Min, Max int
	value            int
}

// NewSpinOption returns a SpinOption initialized to def.
func NewSpinOption(name string, def, min, max int) *SpinOption {
	return &SpinOption{name: name, Default: def, Min: min, Max: max, value: def}
}

func (o *SpinOption) Name() string { return o.name }

func (o *SpinOption) Report() string {
	return "option name " + o.name + " type spin default " +
		strconv.Itoa(o.Default) + " min " + strconv.Itoa(o.Min) + " max " + strconv.Itoa(o.Max)
}

func (o *SpinOption) Set(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	if n < o.Min {
		n = o.Min
	}
	if n > o.Max {
		n = o.Max
	}
	o.value = n
	return nil
}

// Value returns the option's current integer value.
func (o *SpinOption) Value() int { return o.value }

package circuit_test

// The sources below are lifted directly from the worked examples: a single
// two-input NAND, a NOT built by tying a NAND's inputs together with a
// T-joint, and an AND built by cascading the two.

// nand2Source draws a two-input NAND with its two input pins stacked on
// the box's left border and its single output pin on the right:
//
//	   ┏━━━━┓
//	───┨NAND┠───
//	───┨    ┃
//	   ┗━━━━┛
const nand2Source = "   ┏━━━━┓\n───┨NAND┠───\n───┨    ┃\n   ┗━━━━┛"

// notFromNandSource ties both inputs of a NAND together through a T-joint,
// turning it into an inverter:
//
//	    ┏━━━━┓
//	──┬─┨NAND┠───
//	  └─┨    ┃
//	    ┗━━━━┛
const notFromNandSource = "    ┏━━━━┓\n──┬─┨NAND┠───\n  └─┨    ┃\n    ┗━━━━┛"

// andFromNandSource cascades a two-input NAND into a second NAND wired as
// a NOT, producing an AND:
//
//	   ┏━━━━┓    ┏━━━━┓
//	───┨NAND┠──┬─┨NAND┠───
//	───┨    ┃  └─┨    ┃
//	   ┗━━━━┛    ┗━━━━┛
const andFromNandSource = "   ┏━━━━┓    ┏━━━━┓\n───┨NAND┠──┬─┨NAND┠───\n───┨    ┃  └─┨    ┃\n   ┗━━━━┛    ┗━━━━┛"

// looseWireSource has a T-joint whose down arm dead-ends in empty space:
// the horizontal run is anchored at both margins as outer ports, but the
// dangling vertical stub is not.
//
//	────┬────
//	    │
const looseWireSource = "────┬────\n    │"

// threeInputStubsSource has three independent single-cell wire stubs, one
// each on lines 1, 3 and 5, to check outer-port numbering is driven by
// position rather than scan adjacency.
const threeInputStubsSource = "\n─\n\n─\n\n─"

// loopSource is a closed wire rectangle reached through a single T-joint:
// the scanner must walk all the way around it and terminate without
// mistaking the cycle for non-termination.
//
//	  ┌────┐
//	──┤    │
//	  └────┘
const loopSource = "  ┌────┐\n──┤    │\n  └────┘"

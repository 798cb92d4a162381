package hwy

import (
	"math"
	"testing"
)

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3}
	v := Load(data)

	if v.NumLanes() != VecLanes {
		t.Fatalf("Load: got %d lanes, want %d", v.NumLanes(), VecLanes)
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}

	short := Load([]float32{7})
	if short.Lane(0) != 7 || short.Lane(1) != 0 {
		t.Errorf("Load short slice: got %v, want [7 0]", short.Data())
	}
}

func TestMakeAndStore(t *testing.T) {
	v := Make[uint32](6, 18)
	dst := make([]uint32, 2)
	Store(v, dst)
	if dst[0] != 6 || dst[1] != 18 {
		t.Errorf("Store: got %v, want [6 18]", dst)
	}

	w := WithLane(v, 1, 99)
	if w.Lane(1) != 99 || v.Lane(1) != 18 {
		t.Errorf("WithLane must copy: got %v (orig %v)", w.Data(), v.Data())
	}
}

func TestSet(t *testing.T) {
	v := Set[float32](42.0)
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42.0 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v.data[i], 42.0)
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32]()
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := Make[float32](10, -4)
	b := Make[float32](5, 2)

	tests := []struct {
		name string
		got  Vec[float32]
		want [2]float32
	}{
		{"Add", Add(a, b), [2]float32{15, -2}},
		{"Sub", Sub(a, b), [2]float32{5, -6}},
		{"Mul", Mul(a, b), [2]float32{50, -8}},
		{"Div", Div(a, b), [2]float32{2, -2}},
		{"Neg", Neg(a), [2]float32{-10, 4}},
		{"Abs", Abs(a), [2]float32{10, 4}},
		{"Min", Min(a, b), [2]float32{5, -4}},
		{"Max", Max(a, b), [2]float32{10, 2}},
		{"FMA", FMA(a, b, Set[float32](1)), [2]float32{51, -7}},
		{"MulAdd", MulAdd(a, b, Set[float32](1)), [2]float32{51, -7}},
		{"Sqrt", Sqrt(Make[float32](16, 2.25)), [2]float32{4, 1.5}},
		{"Floor", Floor(Make[float32](1.5, -1.5)), [2]float32{1, -2}},
		{"RoundToEven", RoundToEven(Make[float32](2.5, -0.5)), [2]float32{2, 0}},
		{"Reverse", Reverse(a), [2]float32{-4, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range tt.want {
				if tt.got.Lane(i) != tt.want[i] {
					t.Errorf("lane %d: got %v, want %v", i, tt.got.Lane(i), tt.want[i])
				}
			}
		})
	}
}

func TestFMASingleRounding(t *testing.T) {
	// 1+2^-12 squared is 1 + 2^-11 + 2^-24; the last term is lost to a
	// separate multiply and add in float32 but kept by a fused operation.
	x := float32(1 + 0x1p-12)
	fused := FMA(Set(x), Set(x), Set[float32](-1)).Lane(0)
	want := float32(0x1p-11 + 0x1p-24)
	if fused != want {
		t.Errorf("FMA: got %g, want %g", fused, want)
	}
}

func TestReduceSum(t *testing.T) {
	if got := ReduceSum(Make[int32](3, 4)); got != 7 {
		t.Errorf("ReduceSum: got %d, want 7", got)
	}
}

func TestComparisons(t *testing.T) {
	a := Make[float32](1, 3)
	b := Make[float32](2, 3)

	tests := []struct {
		name string
		got  Mask[float32]
		want [2]bool
	}{
		{"Equal", Equal(a, b), [2]bool{false, true}},
		{"NotEqual", NotEqual(a, b), [2]bool{true, false}},
		{"LessThan", LessThan(a, b), [2]bool{true, false}},
		{"Less", Less(a, b), [2]bool{true, false}},
		{"GreaterThan", GreaterThan(b, a), [2]bool{true, false}},
		{"Greater", Greater(b, a), [2]bool{true, false}},
		{"LessEqual", LessEqual(a, b), [2]bool{true, true}},
		{"GreaterEqual", GreaterEqual(a, b), [2]bool{false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range tt.want {
				if tt.got.GetBit(i) != tt.want[i] {
					t.Errorf("lane %d: got %v, want %v", i, tt.got.GetBit(i), tt.want[i])
				}
			}
		})
	}
}

func TestIsNaN(t *testing.T) {
	nan := float32(math.NaN())
	m := IsNaN(Make(nan, 1))
	if !m.GetBit(0) || m.GetBit(1) {
		t.Errorf("IsNaN: got [%v %v], want [true false]", m.GetBit(0), m.GetBit(1))
	}
}

func TestIfThenElse(t *testing.T) {
	a := Make[float32](1, 2)
	b := Make[float32](10, 20)
	mask := LessThan(a, Set[float32](1.5))

	got := IfThenElse(mask, a, b)
	if got.Lane(0) != 1 || got.Lane(1) != 20 {
		t.Errorf("IfThenElse: got %v, want [1 20]", got.Data())
	}

	merged := Merge(a, b, mask)
	if merged != got {
		t.Errorf("Merge: got %v, want %v", merged.Data(), got.Data())
	}

	zeroed := IfThenElseZero(mask, a)
	if zeroed.Lane(0) != 1 || zeroed.Lane(1) != 0 {
		t.Errorf("IfThenElseZero: got %v, want [1 0]", zeroed.Data())
	}
}

func TestMask(t *testing.T) {
	all := Equal(Set[int32](1), Set[int32](1))
	none := Equal(Set[int32](1), Set[int32](2))
	one := Equal(Make[int32](1, 2), Set[int32](1))

	if !all.AllTrue() || !all.AnyTrue() || all.CountTrue() != 2 {
		t.Errorf("all-true mask reported wrong state")
	}
	if none.AllTrue() || none.AnyTrue() || none.CountTrue() != 0 {
		t.Errorf("all-false mask reported wrong state")
	}
	if one.AllTrue() || !one.AnyTrue() || one.CountTrue() != 1 {
		t.Errorf("mixed mask reported wrong state")
	}
	if one.GetBit(-1) || one.GetBit(VecLanes) {
		t.Errorf("GetBit out of range must be false")
	}
}

func TestBitOps(t *testing.T) {
	a := Make[uint32](0xF0F0, 0x1)
	b := Make[uint32](0xFF00, 0x3)

	tests := []struct {
		name string
		got  Vec[uint32]
		want [2]uint32
	}{
		{"And", And(a, b), [2]uint32{0xF000, 0x1}},
		{"Or", Or(a, b), [2]uint32{0xFFF0, 0x3}},
		{"Xor", Xor(a, b), [2]uint32{0x0FF0, 0x2}},
		{"AndNot", AndNot(a, b), [2]uint32{0x0F00, 0x2}},
		{"Not", Not(Zero[uint32]()), [2]uint32{math.MaxUint32, math.MaxUint32}},
		{"ShiftLeft", ShiftLeft(a, 31), [2]uint32{0, 0x80000000}},
		{"ShiftRight", ShiftRight(b, 8), [2]uint32{0xFF, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range tt.want {
				if tt.got.Lane(i) != tt.want[i] {
					t.Errorf("lane %d: got %#x, want %#x", i, tt.got.Lane(i), tt.want[i])
				}
			}
		})
	}
}

func TestBitCast(t *testing.T) {
	v := Make[float32](-1.5, 0.25)
	bits := AsUint32(v)
	if bits.Lane(0) != math.Float32bits(-1.5) || bits.Lane(1) != math.Float32bits(0.25) {
		t.Errorf("AsUint32: got %#x", bits.Data())
	}
	if back := AsFloat32(bits); back != v {
		t.Errorf("AsFloat32(AsUint32(v)): got %v, want %v", back.Data(), v.Data())
	}

	// Flipping the sign bit through the integer view negates the float.
	flipped := AsFloat32(Xor(bits, Set[uint32](0x80000000)))
	if flipped.Lane(0) != 1.5 || flipped.Lane(1) != -0.25 {
		t.Errorf("sign flip: got %v, want [1.5 -0.25]", flipped.Data())
	}
}

func TestConvertToUint32(t *testing.T) {
	tests := []struct {
		in   float32
		want uint32
	}{
		{0, 0},
		{0.99, 0},
		{1, 1},
		{21599.7, 21599},
		{-5, 0},
		{float32(math.NaN()), 0},
		{float32(math.Inf(1)), math.MaxUint32},
		{0x1p33, math.MaxUint32},
	}

	for _, tt := range tests {
		got := ConvertToUint32(Set(tt.in)).Lane(0)
		if got != tt.want {
			t.Errorf("ConvertToUint32(%v): got %d, want %d", tt.in, got, tt.want)
		}
	}

	if f := ConvertToFloat32(Make[uint32](3, 86400)); f.Lane(0) != 3 || f.Lane(1) != 86400 {
		t.Errorf("ConvertToFloat32: got %v", f.Data())
	}
}

func TestDispatch(t *testing.T) {
	level := CurrentLevel()
	name := CurrentName()
	width := CurrentWidth()

	t.Logf("Current dispatch level: %s (width: %d bytes)", name, width)

	if name != level.String() {
		t.Errorf("CurrentName %q does not match level %q", name, level.String())
	}
	if width < 16 {
		t.Errorf("Invalid width: %d", width)
	}
	if HasLanePairs() != (level != DispatchScalar) {
		t.Errorf("HasLanePairs inconsistent with level %s", name)
	}
	if NoSimdEnv() && level != DispatchScalar {
		t.Errorf("HWY_NO_SIMD set but level is %s", name)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv(%q): got %v, want %v", tt.val, got, tt.want)
		}
	}
}

func BenchmarkFMA(b *testing.B) {
	x := Make[float32](1.5, 2.5)
	y := Set[float32](0.5)
	acc := Zero[float32]()
	for i := 0; i < b.N; i++ {
		acc = FMA(x, y, acc)
	}
	_ = acc
}

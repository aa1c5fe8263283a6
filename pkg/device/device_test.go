package device

import (
	"math"
	"strings"
	"testing"

	"github.com/voltlab/dcsim/internal/consts"
	"github.com/voltlab/dcsim/pkg/circuit"
)

// stampRecorder captures matrix stamps without solving anything.
type stampRecorder struct {
	elements map[[2]int]float64
	rhs      map[int]float64
}

func newStampRecorder() *stampRecorder {
	return &stampRecorder{
		elements: make(map[[2]int]float64),
		rhs:      make(map[int]float64),
	}
}

func (r *stampRecorder) AddElement(i, j int, value float64) {
	r.elements[[2]int{i, j}] += value
}

func (r *stampRecorder) AddRHS(i int, value float64) {
	r.rhs[i] += value
}

func approx(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

func TestNewBattery(t *testing.T) {
	m, err := New(circuit.Component{ID: "b1", Kind: circuit.KindBattery}, 12.0)
	if err != nil {
		t.Fatalf("failed to build battery: %v", err)
	}
	b, ok := m.(*Battery)
	if !ok {
		t.Fatalf("expected *Battery, got %T", m)
	}
	if b.GetEMF() != 12.0 {
		t.Errorf("expected supply fallback EMF 12, got %g", b.GetEMF())
	}
	if b.GetInternalResistance() != consts.BatteryInternalResistance {
		t.Errorf("expected default internal resistance, got %g", b.GetInternalResistance())
	}

	m, err = New(circuit.Component{
		ID:    "b2",
		Kind:  circuit.KindBattery,
		Props: circuit.Properties{"voltage": 9.0, "internalResistance": 0.5},
	}, 12.0)
	if err != nil {
		t.Fatalf("failed to build battery: %v", err)
	}
	b = m.(*Battery)
	if b.GetEMF() != 9.0 {
		t.Errorf("expected explicit voltage to win over supply, got %g", b.GetEMF())
	}
	if b.GetInternalResistance() != 0.5 {
		t.Errorf("expected internal resistance 0.5, got %g", b.GetInternalResistance())
	}
}

func TestNewResistanceDefaults(t *testing.T) {
	cases := []struct {
		kind circuit.Kind
		want float64
	}{
		{circuit.KindResistor, consts.DefaultResistance},
		{circuit.KindBulb, consts.DefaultResistance},
		{circuit.KindSwitch, consts.ContactResistance},
		{circuit.KindFuse, consts.ContactResistance},
		{circuit.KindWire, consts.ContactResistance},
		{circuit.KindInductor, consts.InductorResistance},
		{circuit.KindAmmeter, consts.AmmeterResistance},
		{circuit.KindVoltmeter, consts.VoltmeterResistance},
	}
	for _, tc := range cases {
		m, err := New(circuit.Component{ID: "d1", Kind: tc.kind}, 12.0)
		if err != nil {
			t.Fatalf("%s: failed to build model: %v", tc.kind, err)
		}
		r, ok := m.(Resistive)
		if !ok {
			t.Fatalf("%s: expected a resistive model, got %T", tc.kind, m)
		}
		if r.GetResistance() != tc.want {
			t.Errorf("%s: expected default resistance %g, got %g", tc.kind, tc.want, r.GetResistance())
		}
	}
}

func TestNewRejectsNonPositiveResistance(t *testing.T) {
	m, err := New(circuit.Component{
		ID:    "r1",
		Kind:  circuit.KindResistor,
		Props: circuit.Properties{"resistance": -5.0},
	}, 12.0)
	if err != nil {
		t.Fatalf("failed to build resistor: %v", err)
	}
	if got := m.(*Resistor).GetResistance(); got != consts.DefaultResistance {
		t.Errorf("expected negative resistance replaced by default, got %g", got)
	}
}

func TestNewFuseAndSwitchDefaults(t *testing.T) {
	m, err := New(circuit.Component{ID: "f1", Kind: circuit.KindFuse}, 12.0)
	if err != nil {
		t.Fatalf("failed to build fuse: %v", err)
	}
	f := m.(*Fuse)
	if f.GetMaxCurrent() != consts.FuseMaxCurrent {
		t.Errorf("expected default rating %g, got %g", consts.FuseMaxCurrent, f.GetMaxCurrent())
	}
	if f.IsBlown() {
		t.Error("expected fresh fuse intact")
	}

	m, err = New(circuit.Component{ID: "s1", Kind: circuit.KindSwitch}, 12.0)
	if err != nil {
		t.Fatalf("failed to build switch: %v", err)
	}
	if m.(*Switch).IsOn() {
		t.Error("expected switch open unless isOn says otherwise")
	}
}

func TestNewUnknownKind(t *testing.T) {
	_, err := New(circuit.Component{ID: "x1", Kind: circuit.Kind("transistor")}, 12.0)
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if !strings.Contains(err.Error(), "unknown component kind") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResistorStamp(t *testing.T) {
	r := NewResistor("r1", 10.0)
	r.SetNodes([]int{1, 2})

	rec := newStampRecorder()
	if err := r.Stamp(rec); err != nil {
		t.Fatalf("stamp failed: %v", err)
	}

	g := 0.1
	want := map[[2]int]float64{
		{1, 1}: g, {2, 2}: g,
		{1, 2}: -g, {2, 1}: -g,
	}
	for key, v := range want {
		if got := rec.elements[key]; got != v {
			t.Errorf("element (%d,%d): expected %g, got %g", key[0], key[1], v, got)
		}
	}
	if len(rec.rhs) != 0 {
		t.Errorf("expected no RHS entries from a resistor, got %v", rec.rhs)
	}
}

func TestStampSkipsGround(t *testing.T) {
	r := NewResistor("r1", 10.0)
	r.SetNodes([]int{0, 1})

	rec := newStampRecorder()
	if err := r.Stamp(rec); err != nil {
		t.Fatalf("stamp failed: %v", err)
	}

	if got := rec.elements[[2]int{1, 1}]; got != 0.1 {
		t.Errorf("expected diagonal 0.1, got %g", got)
	}
	for key := range rec.elements {
		if key[0] == 0 || key[1] == 0 {
			t.Errorf("ground row stamped at (%d,%d)", key[0], key[1])
		}
	}
	if len(rec.elements) != 1 {
		t.Errorf("expected 1 element, got %d", len(rec.elements))
	}
}

func TestBatteryStamp(t *testing.T) {
	b := NewBattery("b1", 12.0, 1e-3)
	b.SetNodes([]int{0, 1}) // negative pole grounded

	rec := newStampRecorder()
	if err := b.Stamp(rec); err != nil {
		t.Fatalf("stamp failed: %v", err)
	}

	if got := rec.elements[[2]int{1, 1}]; got != 1000.0 {
		t.Errorf("expected conductance 1000, got %g", got)
	}
	if got := rec.rhs[1]; got != 12000.0 {
		t.Errorf("expected Norton source +12000 into positive node, got %g", got)
	}

	// Flipping the battery flips the injection sign.
	b = NewBattery("b1", 12.0, 1e-3)
	b.SetNodes([]int{1, 0})
	rec = newStampRecorder()
	if err := b.Stamp(rec); err != nil {
		t.Fatalf("stamp failed: %v", err)
	}
	if got := rec.rhs[1]; got != -12000.0 {
		t.Errorf("expected Norton source -12000 out of negative node, got %g", got)
	}
}

func TestNonConductingDevicesStampNothing(t *testing.T) {
	models := []Model{
		NewSwitch("s1", consts.ContactResistance, false),
		NewFuse("f1", consts.ContactResistance, 5.0, true),
		NewCapacitor("c1", 1e-6),
	}
	voltages := []float64{0, 5, 3}
	for _, m := range models {
		m.SetNodes([]int{1, 2})
		rec := newStampRecorder()
		if err := m.Stamp(rec); err != nil {
			t.Fatalf("%s: stamp failed: %v", m.GetName(), err)
		}
		if len(rec.elements) != 0 || len(rec.rhs) != 0 {
			t.Errorf("%s: expected no stamps, got %v / %v", m.GetName(), rec.elements, rec.rhs)
		}
		if got := m.GetCurrent(voltages); got != 0 {
			t.Errorf("%s: expected zero current, got %g", m.GetName(), got)
		}
	}
}

func TestStampNodeCountChecked(t *testing.T) {
	r := NewResistor("r1", 10.0)
	r.SetNodes([]int{1})
	if err := r.Stamp(newStampRecorder()); err == nil {
		t.Fatal("expected error for wrong node count")
	} else if !strings.Contains(err.Error(), "requires exactly 2 nodes") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBranchCurrents(t *testing.T) {
	voltages := []float64{0, 5, 3}

	r := NewResistor("r1", 10.0)
	r.SetNodes([]int{1, 2})
	if got := r.GetCurrent(voltages); !approx(got, 0.2, 1e-12) {
		t.Errorf("resistor: expected 0.2 A, got %g", got)
	}
	// Reversed terminals flip the sign.
	r.SetNodes([]int{2, 1})
	if got := r.GetCurrent(voltages); !approx(got, -0.2, 1e-12) {
		t.Errorf("resistor reversed: expected -0.2 A, got %g", got)
	}

	b := NewBattery("b1", 12.0, 1e-3)
	b.SetNodes([]int{0, 1})
	if got := b.GetCurrent([]float64{0, 11.99}); !approx(got, 10.0, 1e-6) {
		t.Errorf("battery: expected 10 A discharge, got %g", got)
	}

	s := NewSwitch("s1", 1e-4, true)
	s.SetNodes([]int{1, 0})
	if got := s.GetCurrent([]float64{0, 0.001}); !approx(got, 10.0, 1e-9) {
		t.Errorf("closed switch: expected 10 A, got %g", got)
	}
}

func TestBulbBrightness(t *testing.T) {
	b := NewBulb("l1", 10.0, 60.0)
	cases := []struct {
		current float64
		want    float64
	}{
		{0, 0},
		{1, 10.0 / 60.0},
		{-1, 10.0 / 60.0},
		{3, 1.0}, // 90 W on a 60 W bulb clamps at full brightness
	}
	for _, tc := range cases {
		if got := b.GetBrightness(tc.current); !approx(got, tc.want, 1e-12) {
			t.Errorf("brightness at %g A: expected %g, got %g", tc.current, tc.want, got)
		}
	}
}

func TestMeterReadings(t *testing.T) {
	a := NewAmmeter("a1", 1e-3)
	a.SetNodes([]int{1, 2})
	voltages := []float64{0, 1.0, 0.9}
	if got, want := a.GetReading(voltages), a.GetCurrent(voltages); got != want {
		t.Errorf("ammeter reading %g differs from branch current %g", got, want)
	}

	v := NewVoltmeter("v1", 1e6)
	v.SetNodes([]int{1, 0})
	if got := v.GetReading([]float64{0, 12.0}); got != 12.0 {
		t.Errorf("voltmeter: expected 12 V, got %g", got)
	}
}

func TestFuseOverloaded(t *testing.T) {
	f := NewFuse("f1", consts.ContactResistance, 5.0, false)
	if f.Overloaded(4.9) {
		t.Error("expected 4.9 A under a 5 A rating")
	}
	if !f.Overloaded(5.1) {
		t.Error("expected 5.1 A over a 5 A rating")
	}
	if !f.Overloaded(-5.1) {
		t.Error("expected magnitude comparison for reverse current")
	}
}

func TestInductorActsAsWinding(t *testing.T) {
	l := NewInductor("l1", 0.1, 1e-3)
	l.SetNodes([]int{1, 0})

	rec := newStampRecorder()
	if err := l.Stamp(rec); err != nil {
		t.Fatalf("stamp failed: %v", err)
	}
	if got := rec.elements[[2]int{1, 1}]; got != 1000.0 {
		t.Errorf("expected winding conductance 1000, got %g", got)
	}
	if got := l.GetCurrent([]float64{0, 0.002}); !approx(got, 2.0, 1e-9) {
		t.Errorf("expected 2 A through winding, got %g", got)
	}
}

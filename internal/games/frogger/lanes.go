package frogger

// LaneKind classifies a lane's hazard rule.
type LaneKind int

const (
	LaneSafe LaneKind = iota
	LaneRoad          // Touching a vehicle kills
	LaneWater         // Standing on no log kills; a log carries the frog
)

// laneCount is the fixed field height in lanes: goal row, four water
// lanes, a median, five road lanes, two start rows.
const laneCount = 13

// Lane is one horizontal strip with objects moving at constant speed.
// Object positions are left edges in cells; objects wrap around the field.
type Lane struct {
	Kind    LaneKind
	Speed   float64 // Cells per tick, sign is direction
	Length  int     // Object length in cells
	Objects []float64
}

// laneSpec describes one lane of the fixed field layout.
type laneSpec struct {
	kind   LaneKind
	speed  float64
	length int
	count  int
}

// fieldLayout is the 13-lane field, top to bottom. Adjacent lanes run in
// opposite directions so the player cannot ride a single rhythm through.
var fieldLayout = [laneCount]laneSpec{
	{kind: LaneSafe},                                      // 0: goal row
	{kind: LaneWater, speed: 0.25, length: 6, count: 3},   // 1
	{kind: LaneWater, speed: -0.30, length: 4, count: 3},  // 2
	{kind: LaneWater, speed: 0.20, length: 5, count: 2},   // 3
	{kind: LaneWater, speed: -0.25, length: 4, count: 3},  // 4
	{kind: LaneSafe},                                      // 5: median
	{kind: LaneRoad, speed: -0.35, length: 3, count: 2},   // 6
	{kind: LaneRoad, speed: 0.25, length: 2, count: 3},    // 7
	{kind: LaneRoad, speed: -0.20, length: 2, count: 3},   // 8
	{kind: LaneRoad, speed: 0.45, length: 2, count: 2},    // 9
	{kind: LaneRoad, speed: -0.30, length: 3, count: 3},   // 10
	{kind: LaneSafe},                                      // 11
	{kind: LaneSafe},                                      // 12: start row
}

// buildLanes instantiates the field layout for the given width, spreading
// each lane's objects evenly.
func buildLanes(width int, speedScale float64) []Lane {
	lanes := make([]Lane, laneCount)
	for i, spec := range fieldLayout {
		lane := Lane{
			Kind:   spec.kind,
			Speed:  spec.speed * speedScale,
			Length: spec.length,
		}
		if spec.count > 0 {
			lane.Objects = make([]float64, spec.count)
			for j := range lane.Objects {
				lane.Objects[j] = float64(j * width / spec.count)
			}
		}
		lanes[i] = lane
	}
	return lanes
}

// advance moves every object by the lane speed, wrapping around the field.
func (l *Lane) advance(width int) {
	for i := range l.Objects {
		l.Objects[i] += l.Speed
		if l.Objects[i] >= float64(width) {
			l.Objects[i] -= float64(width)
		} else if l.Objects[i] < 0 {
			l.Objects[i] += float64(width)
		}
	}
}

// occupied reports whether the cell under x is covered by one of the
// lane's objects, accounting for wrap-around at the field edge.
func (l *Lane) occupied(x float64, width int) bool {
	cell := int(x + 0.5)
	for _, o := range l.Objects {
		start := int(o)
		for i := 0; i < l.Length; i++ {
			if wrapCell(start+i, width) == cell {
				return true
			}
		}
	}
	return false
}

// wrapCell maps a possibly out-of-range column back onto the field.
func wrapCell(x, width int) int {
	x %= width
	if x < 0 {
		x += width
	}
	return x
}

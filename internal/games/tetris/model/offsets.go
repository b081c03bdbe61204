package model

// offsets[kind][facing] lists the four block offsets from the piece anchor.
// The anchor is the rotation center of the guideline rotation system, so
// rotating in place never needs a translation.
var offsets = [NumKinds][4][4]Pos{
	KindO: {
		North: {{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		East:  {{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		South: {{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		West:  {{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
	KindI: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		East:  {{1, -1}, {1, 0}, {1, 1}, {1, 2}},
		South: {{-1, -1}, {0, -1}, {1, -1}, {2, -1}},
		West:  {{0, -1}, {0, 0}, {0, 1}, {0, 2}},
	},
	KindT: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		East:  {{0, 1}, {0, 0}, {0, -1}, {1, 0}},
		South: {{1, 0}, {0, 0}, {-1, 0}, {0, -1}},
		West:  {{0, -1}, {0, 0}, {0, 1}, {-1, 0}},
	},
	KindL: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
		East:  {{0, 1}, {0, 0}, {0, -1}, {1, -1}},
		South: {{1, 0}, {0, 0}, {-1, 0}, {-1, -1}},
		West:  {{0, -1}, {0, 0}, {0, 1}, {-1, 1}},
	},
	KindJ: {
		North: {{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
		East:  {{1, 1}, {0, 1}, {0, 0}, {0, -1}},
		South: {{1, -1}, {1, 0}, {0, 0}, {-1, 0}},
		West:  {{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
	},
	KindS: {
		North: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		East:  {{0, 1}, {0, 0}, {1, 0}, {1, -1}},
		South: {{1, 0}, {0, 0}, {0, -1}, {-1, -1}},
		West:  {{0, -1}, {0, 0}, {-1, 0}, {-1, 1}},
	},
	KindZ: {
		North: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
		East:  {{1, 1}, {1, 0}, {0, 0}, {0, -1}},
		South: {{1, -1}, {0, -1}, {0, 0}, {-1, 0}},
		West:  {{-1, -1}, {-1, 0}, {0, 0}, {0, 1}},
	},
}

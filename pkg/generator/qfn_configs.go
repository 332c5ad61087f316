package generator

// qfnJEDECConfigs lists the package variations of JEDEC MO-220 revision
// K.01, tables 6 through 8, columns VARIATION, D, E, D2 MAX, E2 MAX, L MAX,
// ND and NE. Height A is 1.0 mm for V variations and 0.8 mm for W
// variations; the pitch e is given per table section.
var qfnJEDECConfigs = []QfnConfig{
	// Variation, A, e, D, E, D2, E2, L, ND, NE
	{"VEEB", 1.0, 0.80, 3.0, 3.0, 1.25, 1.25, 0.75, 1, 1},
	{"VGEB", 1.0, 0.80, 4.0, 3.0, 2.25, 1.25, 0.75, 3, 1},
	{"VGGB", 1.0, 0.80, 4.0, 4.0, 2.25, 2.25, 0.75, 3, 3},
	{"VGGB-1", 1.0, 0.80, 4.0, 4.0, 2.30, 2.30, 0.75, 4, 3},
	{"VGHB", 1.0, 0.80, 4.0, 5.0, 2.30, 3.30, 0.75, 2, 3},
	{"VHGB", 1.0, 0.80, 5.0, 4.0, 3.25, 2.25, 0.75, 4, 3},
	{"VHGB-1", 1.0, 0.80, 5.0, 4.0, 3.30, 2.30, 0.75, 5, 3},
	{"VHHB", 1.0, 0.80, 5.0, 5.0, 3.25, 3.25, 0.75, 4, 4},
	{"VHHB-1", 1.0, 0.80, 5.0, 5.0, 3.30, 3.25, 0.75, 6, 4},
	{"VJHB", 1.0, 0.80, 6.0, 5.0, 4.25, 3.25, 0.75, 5, 4},
	{"VJHB-1", 1.0, 0.80, 6.0, 5.0, 4.30, 3.30, 0.75, 6, 4},
	{"VJJB", 1.0, 0.80, 6.0, 6.0, 4.25, 4.25, 0.75, 5, 5},
	{"VJJB-1", 1.0, 0.80, 6.0, 6.0, 4.30, 4.30, 0.75, 7, 5},
	{"VJJB-2", 1.0, 0.80, 6.0, 6.0, 4.30, 4.30, 0.75, 5, 7},
	{"VKKB", 1.0, 0.80, 7.0, 7.0, 5.25, 5.25, 0.75, 7, 7},
	{"VLLB", 1.0, 0.80, 8.0, 8.0, 6.25, 6.25, 0.75, 8, 8},
	{"VLLB-1", 1.0, 0.80, 8.0, 8.0, 6.30, 6.30, 0.75, 8, 6},
	{"VMMB", 1.0, 0.80, 9.0, 9.0, 7.10, 7.10, 0.75, 9, 9},
	{"VEEC", 1.0, 0.65, 3.0, 3.0, 1.25, 1.25, 0.75, 2, 2},
	{"VEEC-1", 1.0, 0.65, 3.0, 3.0, 1.80, 1.80, 0.45, 3, 3},
	{"VEEC-2", 1.0, 0.65, 3.0, 3.0, 1.80, 1.80, 0.45, 2, 2},
	{"VEEC-3", 1.0, 0.65, 3.0, 3.0, 1.80, 1.80, 0.50, 2, 2},
	{"VGEC", 1.0, 0.65, 4.0, 3.0, 2.25, 1.25, 0.75, 4, 2},
	{"VGGC", 1.0, 0.65, 4.0, 4.0, 2.25, 2.25, 0.75, 4, 4},
	{"VGGC-1", 1.0, 0.65, 4.0, 4.0, 2.80, 2.80, 0.45, 3, 3},
	{"VGGC-2", 1.0, 0.65, 4.0, 4.0, 2.80, 2.80, 0.45, 4, 4},
	{"VGGC-3", 1.0, 0.65, 4.0, 4.0, 2.80, 2.80, 0.50, 4, 4},
	{"VGGC-4", 1.0, 0.65, 4.0, 4.0, 2.60, 2.60, 0.65, 4, 4},
	{"VHGC", 1.0, 0.65, 5.0, 4.0, 3.25, 2.25, 0.75, 5, 4},
	{"VHGC-1", 1.0, 0.65, 5.0, 4.0, 3.70, 2.70, 0.50, 5, 4},
	{"VHHC", 1.0, 0.65, 5.0, 5.0, 3.25, 3.25, 0.75, 5, 5},
	{"VHHC-1", 1.0, 0.65, 5.0, 5.0, 3.80, 3.65, 0.45, 6, 6},
	{"VHHC-2", 1.0, 0.65, 5.0, 5.0, 3.80, 3.65, 0.45, 5, 5},
	{"VHJC", 1.0, 0.65, 5.0, 6.0, 3.80, 4.65, 0.45, 5, 6},
	{"VJHC", 1.0, 0.65, 6.0, 5.0, 4.25, 3.25, 0.75, 6, 5},
	{"VJJC", 1.0, 0.65, 6.0, 6.0, 4.25, 4.25, 0.75, 7, 7},
	{"VJJC-1", 1.0, 0.65, 6.0, 6.0, 4.80, 4.80, 0.45, 6, 6},
	{"VJJC-2", 1.0, 0.65, 6.0, 6.0, 4.80, 4.80, 0.45, 8, 8},
	{"VJJC-3", 1.0, 0.65, 6.0, 6.0, 4.80, 4.80, 0.45, 7, 7},
	{"VJJC-4", 1.0, 0.65, 6.0, 6.0, 4.55, 4.55, 0.50, 7, 7},
	{"VKKC", 1.0, 0.65, 7.0, 7.0, 5.25, 5.25, 0.75, 8, 8},
	{"VKKC-1", 1.0, 0.65, 7.0, 7.0, 5.80, 5.80, 0.45, 9, 9},
	{"VKKC-2", 1.0, 0.65, 7.0, 7.0, 5.80, 5.80, 0.45, 8, 8},
	{"VKMC", 1.0, 0.65, 7.0, 9.0, 5.25, 7.25, 0.65, 8, 11},
	{"VLLC", 1.0, 0.65, 8.0, 8.0, 6.25, 6.25, 0.75, 10, 10},
	{"VLLC-1", 1.0, 0.65, 8.0, 8.0, 6.80, 6.80, 0.45, 9, 9},
	{"VLLC-2", 1.0, 0.65, 8.0, 8.0, 6.80, 6.80, 0.45, 11, 11},
	{"VLLC-3", 1.0, 0.65, 8.0, 8.0, 6.80, 6.80, 0.45, 10, 10},
	{"VLLC-4", 1.0, 0.65, 8.0, 8.0, 6.60, 6.60, 0.50, 11, 11},
	{"VMMC", 1.0, 0.65, 9.0, 9.0, 7.80, 7.80, 0.45, 12, 12},
	{"VMMC-1", 1.0, 0.65, 9.0, 9.0, 7.80, 7.80, 0.45, 11, 11},
	{"VMMC-2", 1.0, 0.65, 9.0, 9.0, 6.75, 6.75, 0.50, 11, 11},
	{"VMMC-3", 1.0, 0.65, 9.0, 9.0, 7.50, 7.50, 0.50, 11, 11},
	{"VCCD", 1.0, 0.50, 2.0, 2.0, 0.80, 0.80, 0.50, 2, 2},
	{"VEED-1", 1.0, 0.50, 3.0, 3.0, 1.25, 1.25, 0.75, 3, 3},
	{"VEED-2", 1.0, 0.50, 3.0, 3.0, 1.25, 1.25, 0.50, 4, 4},
	{"VEED-3", 1.0, 0.50, 3.0, 3.0, 1.80, 1.80, 0.45, 3, 3},
	{"VEED-4", 1.0, 0.50, 3.0, 3.0, 1.80, 1.80, 0.45, 4, 4},
	{"VEED-5", 1.0, 0.50, 3.0, 3.0, 1.65, 1.65, 0.50, 3, 3},
	{"VEED-6", 1.0, 0.50, 3.0, 3.0, 1.65, 1.65, 0.50, 4, 4},
	{"VEED-7", 1.0, 0.50, 3.0, 3.0, 1.45, 1.45, 0.55, 4, 4},
	{"VFFD", 1.0, 0.50, 3.5, 3.5, 2.10, 2.10, 0.60, 5, 5},
	{"VFFD-1", 1.0, 0.50, 3.5, 3.5, 1.80, 1.80, 0.75, 5, 5},
	{"VFSD", 1.0, 0.50, 3.5, 4.5, 2.10, 3.10, 0.60, 4, 8},
	{"VFSD-1", 1.0, 0.50, 3.5, 4.5, 1.80, 2.80, 0.75, 4, 8},
	{"VFSD-2", 1.0, 0.50, 3.5, 4.5, 2.10, 3.10, 0.50, 4, 8},
	{"VGED", 1.0, 0.50, 4.0, 3.0, 2.25, 1.25, 0.75, 5, 3},
	{"VGGD-1", 1.0, 0.50, 4.0, 4.0, 2.25, 2.25, 0.75, 5, 5},
	{"VGGD-2", 1.0, 0.50, 4.0, 4.0, 2.25, 2.25, 0.50, 6, 6},
	{"VGGD-3", 1.0, 0.50, 4.0, 4.0, 2.30, 2.30, 0.75, 4, 3},
	{"VGGD-4", 1.0, 0.50, 4.0, 4.0, 2.30, 2.30, 0.75, 4, 4},
	{"VGGD-5", 1.0, 0.50, 4.0, 4.0, 2.80, 2.80, 0.45, 5, 5},
	{"VGGD-6", 1.0, 0.50, 4.0, 4.0, 2.80, 2.80, 0.45, 6, 6},
	{"VGGD-7", 1.0, 0.50, 4.0, 4.0, 2.90, 2.90, 0.45, 6, 8},
	{"VGGD-8", 1.0, 0.50, 4.0, 4.0, 2.60, 2.60, 0.50, 6, 6},
	{"VGGD-9", 1.0, 0.50, 4.0, 4.0, 2.45, 2.45, 0.55, 6, 6},
	{"VGGD-10", 1.0, 0.50, 4.0, 4.0, 2.60, 2.60, 0.50, 4, 4},
	{"VGGD-11", 1.0, 0.50, 4.0, 4.0, 2.60, 2.60, 0.50, 5, 5},
	{"VGHD", 1.0, 0.50, 4.0, 5.0, 2.25, 3.25, 0.50, 6, 8},
	{"VGHD-1", 1.0, 0.50, 4.0, 5.0, 2.80, 3.80, 0.45, 5, 7},
	{"VGHD-2", 1.0, 0.50, 4.0, 5.0, 2.90, 3.90, 0.45, 6, 6},
	{"VGHD-3", 1.0, 0.50, 4.0, 5.0, 2.80, 3.80, 0.45, 6, 8},
	{"VSTD", 1.0, 0.50, 4.5, 5.5, 3.10, 4.10, 0.60, 6, 10},
	{"VSTD-1", 1.0, 0.50, 4.5, 5.5, 2.80, 3.80, 0.75, 6, 10},
	{"VSUD", 1.0, 0.50, 4.5, 6.5, 3.10, 5.10, 0.60, 6, 12},
	{"VSUD-1", 1.0, 0.50, 4.5, 6.5, 2.80, 4.80, 0.75, 6, 12},
	{"VHGD", 1.0, 0.50, 5.0, 4.0, 3.25, 2.25, 0.75, 7, 5},
	{"VHHD-1", 1.0, 0.50, 5.0, 5.0, 3.35, 3.35, 0.75, 7, 7},
	{"VHHD-2", 1.0, 0.50, 5.0, 5.0, 2.35, 2.35, 0.50, 8, 8},
	{"VHHD-3", 1.0, 0.50, 5.0, 5.0, 3.80, 3.80, 0.45, 7, 7},
	{"VHHD-4", 1.0, 0.50, 5.0, 5.0, 3.80, 3.80, 0.45, 8, 8},
	{"VHHD-5", 1.0, 0.50, 5.0, 5.0, 3.70, 3.70, 0.50, 8, 8},
	{"VHHD-6", 1.0, 0.50, 5.0, 5.0, 3.45, 3.45, 0.55, 8, 8},
	{"VHJD", 1.0, 0.50, 5.0, 6.0, 3.60, 4.60, 0.75, 7, 9},
	{"VHKD", 1.0, 0.50, 5.0, 7.0, 3.25, 5.25, 0.50, 7, 12},
	{"VHKD-1", 1.0, 0.50, 5.0, 7.0, 3.80, 5.80, 0.45, 7, 12},
	{"VHKD-2", 1.0, 0.50, 5.0, 7.0, 3.50, 5.50, 0.50, 8, 12},
	{"VTUD", 1.0, 0.50, 5.5, 6.5, 4.10, 5.10, 0.60, 8, 12},
	{"VTUD-1", 1.0, 0.50, 5.5, 6.5, 3.80, 4.80, 0.65, 8, 12},
	{"VJHD", 1.0, 0.50, 6.0, 5.0, 4.25, 3.25, 0.65, 9, 7},
	{"VJJD-1", 1.0, 0.50, 6.0, 6.0, 4.25, 4.25, 0.75, 9, 9},
	{"VJJD-2", 1.0, 0.50, 6.0, 6.0, 4.25, 4.25, 0.50, 10, 10},
	{"VJJD-3", 1.0, 0.50, 6.0, 6.0, 4.30, 4.30, 0.75, 10, 9},
	{"VJJD-4", 1.0, 0.50, 6.0, 6.0, 4.80, 4.80, 0.45, 9, 9},
	{"VJJD-5", 1.0, 0.50, 6.0, 6.0, 4.80, 4.80, 0.45, 10, 10},
	{"VJJD-6", 1.0, 0.50, 6.0, 6.0, 4.45, 4.45, 0.55, 10, 10},
	{"VJJD-7", 1.0, 0.50, 6.0, 6.0, 4.30, 4.30, 0.75, 8, 8},
	{"VJJD-8", 1.0, 0.50, 6.0, 6.0, 4.60, 4.60, 0.50, 9, 9},
	{"VKHD", 1.0, 0.50, 7.0, 5.0, 5.25, 3.25, 0.50, 12, 7},
	{"VKKD", 1.0, 0.50, 7.0, 7.0, 5.80, 5.80, 0.45, 10, 10},
	{"VKKD-1", 1.0, 0.50, 7.0, 7.0, 5.25, 5.25, 0.75, 11, 11},
	{"VKKD-2", 1.0, 0.50, 7.0, 7.0, 5.25, 5.25, 0.50, 12, 12},
	{"VKKD-3", 1.0, 0.50, 7.0, 7.0, 5.80, 5.80, 0.45, 11, 11},
	{"VKKD-4", 1.0, 0.50, 7.0, 7.0, 5.80, 5.80, 0.45, 12, 12},
	{"VKKD-5", 1.0, 0.50, 7.0, 7.0, 5.30, 5.30, 0.75, 12, 10},
	{"VKKD-6", 1.0, 0.50, 7.0, 7.0, 5.45, 5.45, 0.55, 12, 12},
	{"VKKD-7", 1.0, 0.50, 7.0, 7.0, 5.30, 5.30, 0.75, 10, 12},
	{"VKKD-8", 1.0, 0.50, 7.0, 7.0, 5.20, 5.20, 0.75, 11, 13},
	{"VLLD", 1.0, 0.50, 8.0, 8.0, 6.80, 6.80, 0.45, 12, 12},
	{"VLLD-1", 1.0, 0.50, 8.0, 8.0, 6.25, 6.25, 0.75, 13, 13},
	{"VLLD-2", 1.0, 0.50, 8.0, 8.0, 6.25, 6.25, 0.50, 14, 14},
	{"VLLD-3", 1.0, 0.50, 8.0, 8.0, 6.30, 6.30, 0.75, 13, 11},
	{"VLLD-4", 1.0, 0.50, 8.0, 8.0, 6.80, 6.80, 0.45, 13, 13},
	{"VLLD-5", 1.0, 0.50, 8.0, 8.0, 6.80, 6.80, 0.45, 14, 14},
	{"VLLD-6", 1.0, 0.50, 8.0, 8.0, 6.45, 6.45, 0.55, 14, 14},
	{"VMMD", 1.0, 0.50, 9.0, 9.0, 7.80, 7.80, 0.45, 16, 16},
	{"VMMD-1", 1.0, 0.50, 9.0, 9.0, 7.80, 7.80, 0.45, 15, 15},
	{"VMMD-2", 1.0, 0.50, 9.0, 9.0, 7.80, 7.80, 0.45, 14, 14},
	{"VMMD-3", 1.0, 0.50, 9.0, 9.0, 7.45, 7.45, 0.55, 16, 16},
	{"VMMD-4", 1.0, 0.50, 9.0, 9.0, 7.50, 7.50, 0.50, 16, 16},
	{"VNND-1", 1.0, 0.50, 10.0, 10.0, 8.25, 8.25, 0.65, 16, 16},
	{"VNND-2", 1.0, 0.50, 10.0, 10.0, 8.25, 8.25, 0.65, 17, 17},
	{"VNND-3", 1.0, 0.50, 10.0, 10.0, 8.45, 8.45, 0.55, 18, 18},
	{"VNND-4", 1.0, 0.50, 10.0, 10.0, 6.50, 6.50, 0.50, 18, 18},
	{"VRRD", 1.0, 0.50, 12.0, 12.0, 10.25, 10.25, 0.60, 20, 20},
	{"VEEE", 1.0, 0.40, 3.0, 3.0, 1.25, 1.25, 0.50, 5, 5},
	{"VEEE-1", 1.0, 0.40, 3.0, 3.0, 1.25, 1.25, 0.50, 4, 4},
	{"VGGE", 1.0, 0.40, 4.0, 4.0, 2.25, 2.25, 0.50, 7, 7},
	{"VHHE", 1.0, 0.40, 5.0, 5.0, 3.25, 3.25, 0.50, 9, 9},
	{"VHHE-1", 1.0, 0.40, 5.0, 5.0, 3.75, 3.75, 0.50, 10, 10},
	{"VJJE", 1.0, 0.40, 6.0, 6.0, 4.25, 4.25, 0.50, 12, 12},
	{"VJJE-1", 1.0, 0.40, 6.0, 6.0, 4.75, 4.75, 0.50, 12, 12},
	{"VGHE", 1.0, 0.40, 4.0, 5.0, 2.70, 3.70, 0.50, 7, 9},
	{"VGHE-1", 1.0, 0.40, 4.0, 5.0, 2.70, 3.70, 0.50, 7, 10},
	{"VLLE-1", 1.0, 0.40, 8.0, 8.0, 6.25, 6.25, 0.50, 17, 17},
	{"VLLE-2", 1.0, 0.40, 8.0, 8.0, 6.60, 6.60, 0.50, 16, 16},
	{"VMME", 1.0, 0.40, 9.0, 9.0, 7.25, 7.25, 0.50, 18, 18},
	{"VMME-1", 1.0, 0.40, 9.0, 9.0, 7.25, 7.25, 0.50, 19, 19},
	{"VNNE", 1.0, 0.40, 10.0, 10.0, 8.25, 8.25, 0.50, 22, 22},
	{"VNNE-1", 1.0, 0.40, 10.0, 10.0, 6.90, 6.90, 0.50, 22, 22},
	{"VKKE", 1.0, 0.40, 7.0, 7.0, 5.25, 5.25, 0.50, 14, 14},
	{"VLLE", 1.0, 0.40, 8.0, 8.0, 6.25, 6.25, 0.50, 16, 16},
	{"VRRE", 1.0, 0.40, 12.0, 12.0, 10.25, 10.25, 0.50, 25, 25},
	{"VRRE-1", 1.0, 0.40, 12.0, 12.0, 6.90, 6.90, 0.50, 25, 25},
	{"VRRE-2", 1.0, 0.40, 12.0, 12.0, 10.25, 10.25, 0.50, 27, 27},
	{"WEEB", 0.8, 0.80, 3.0, 3.0, 1.25, 1.25, 0.75, 1, 1},
	{"WGEB", 0.8, 0.80, 4.0, 3.0, 2.25, 1.25, 0.75, 3, 1},
	{"WGGB", 0.8, 0.80, 4.0, 4.0, 2.25, 2.25, 0.75, 3, 3},
	{"WGGB-1", 0.8, 0.80, 4.0, 4.0, 2.30, 2.30, 0.75, 4, 3},
	{"WGHB", 0.8, 0.80, 4.0, 5.0, 2.30, 3.30, 0.75, 2, 3},
	{"WHGB", 0.8, 0.80, 5.0, 4.0, 3.25, 2.25, 0.75, 4, 3},
	{"WHGB-1", 0.8, 0.80, 5.0, 4.0, 3.30, 2.30, 0.75, 5, 3},
	{"WHHB", 0.8, 0.80, 5.0, 5.0, 3.25, 3.25, 0.75, 4, 4},
	{"WHHB-1", 0.8, 0.80, 5.0, 5.0, 3.30, 3.25, 0.75, 6, 4},
	{"WJHB", 0.8, 0.80, 6.0, 5.0, 4.25, 3.25, 0.75, 5, 4},
	{"WJHB-1", 0.8, 0.80, 6.0, 5.0, 4.30, 3.30, 0.75, 6, 4},
	{"WJJB", 0.8, 0.80, 6.0, 6.0, 4.25, 4.25, 0.75, 5, 5},
	{"WJJB-1", 0.8, 0.80, 6.0, 6.0, 4.30, 4.30, 0.75, 7, 5},
	{"WJJB-2", 0.8, 0.80, 6.0, 6.0, 4.30, 4.30, 0.75, 5, 7},
	{"WKKB", 0.8, 0.80, 7.0, 7.0, 5.25, 5.25, 0.75, 7, 7},
	{"WLLB", 0.8, 0.80, 8.0, 8.0, 6.25, 6.25, 0.75, 8, 8},
	{"WLLB-1", 0.8, 0.80, 8.0, 8.0, 6.30, 6.30, 0.75, 8, 6},
	{"WMMB", 0.8, 0.80, 9.0, 9.0, 7.10, 7.10, 0.75, 9, 9},
	{"WEEC", 0.8, 0.65, 3.0, 3.0, 1.25, 1.25, 0.75, 2, 2},
	{"WEEC-1", 0.8, 0.65, 3.0, 3.0, 1.80, 1.80, 0.45, 3, 3},
	{"WEEC-2", 0.8, 0.65, 3.0, 3.0, 1.80, 1.80, 0.45, 2, 2},
	{"WEEC-3", 0.8, 0.65, 3.0, 3.0, 1.80, 1.80, 0.50, 2, 2},
	{"WGEC", 0.8, 0.65, 4.0, 3.0, 2.25, 1.25, 0.75, 4, 2},
	{"WGGC", 0.8, 0.65, 4.0, 4.0, 2.25, 2.25, 0.75, 4, 4},
	{"WGGC-1", 0.8, 0.65, 4.0, 4.0, 2.80, 2.80, 0.45, 3, 3},
	{"WGGC-2", 0.8, 0.65, 4.0, 4.0, 2.80, 2.80, 0.45, 4, 4},
	{"WGGC-3", 0.8, 0.65, 4.0, 4.0, 2.80, 2.80, 0.50, 4, 4},
	{"WGGC-4", 0.8, 0.65, 4.0, 4.0, 2.60, 2.60, 0.65, 4, 4},
	{"WHGC", 0.8, 0.65, 5.0, 4.0, 3.25, 2.25, 0.75, 5, 4},
	{"WHGC-1", 0.8, 0.65, 5.0, 4.0, 3.70, 2.70, 0.50, 5, 4},
	{"WHHC", 0.8, 0.65, 5.0, 5.0, 3.25, 3.25, 0.75, 5, 5},
	{"WHHC-1", 0.8, 0.65, 5.0, 5.0, 3.80, 3.65, 0.45, 6, 6},
	{"WHHC-2", 0.8, 0.65, 5.0, 5.0, 3.80, 3.65, 0.45, 5, 5},
	{"WHJC", 0.8, 0.65, 5.0, 6.0, 3.80, 4.65, 0.45, 5, 6},
	{"WJHC", 0.8, 0.65, 6.0, 5.0, 4.25, 3.25, 0.75, 6, 5},
	{"WJJC", 0.8, 0.65, 6.0, 6.0, 4.25, 4.25, 0.75, 7, 7},
	{"WJJC-1", 0.8, 0.65, 6.0, 6.0, 4.80, 4.80, 0.45, 6, 6},
	{"WJJC-2", 0.8, 0.65, 6.0, 6.0, 4.80, 4.80, 0.45, 8, 8},
	{"WJJC-3", 0.8, 0.65, 6.0, 6.0, 4.80, 4.80, 0.45, 7, 7},
	{"WJJC-4", 0.8, 0.65, 6.0, 6.0, 4.55, 4.55, 0.50, 7, 7},
	{"WKKC", 0.8, 0.65, 7.0, 7.0, 5.25, 5.25, 0.75, 8, 8},
	{"WKKC-1", 0.8, 0.65, 7.0, 7.0, 5.80, 5.80, 0.45, 9, 9},
	{"WKKC-2", 0.8, 0.65, 7.0, 7.0, 5.80, 5.80, 0.45, 8, 8},
	{"WKMC", 0.8, 0.65, 7.0, 9.0, 5.25, 7.25, 0.65, 8, 11},
	{"WLLC", 0.8, 0.65, 8.0, 8.0, 6.25, 6.25, 0.75, 10, 10},
	{"WLLC-1", 0.8, 0.65, 8.0, 8.0, 6.80, 6.80, 0.45, 9, 9},
	{"WLLC-2", 0.8, 0.65, 8.0, 8.0, 6.80, 6.80, 0.45, 11, 11},
	{"WLLC-3", 0.8, 0.65, 8.0, 8.0, 6.80, 6.80, 0.45, 10, 10},
	{"WLLC-4", 0.8, 0.65, 8.0, 8.0, 6.60, 6.60, 0.50, 11, 11},
	{"WMMC", 0.8, 0.65, 9.0, 9.0, 7.80, 7.80, 0.45, 12, 12},
	{"WMMC-1", 0.8, 0.65, 9.0, 9.0, 7.80, 7.80, 0.45, 11, 11},
	{"WMMC-2", 0.8, 0.65, 9.0, 9.0, 6.75, 6.75, 0.50, 11, 11},
	{"WMMC-3", 0.8, 0.65, 9.0, 9.0, 7.50, 7.50, 0.50, 11, 11},
	{"WCCD", 0.8, 0.50, 2.0, 2.0, 0.80, 0.80, 0.50, 2, 2},
	{"WEED-1", 0.8, 0.50, 3.0, 3.0, 1.25, 1.25, 0.75, 3, 3},
	{"WEED-2", 0.8, 0.50, 3.0, 3.0, 1.25, 1.25, 0.50, 4, 4},
	{"WEED-3", 0.8, 0.50, 3.0, 3.0, 1.80, 1.80, 0.45, 3, 3},
	{"WEED-4", 0.8, 0.50, 3.0, 3.0, 1.80, 1.80, 0.45, 4, 4},
	{"WEED-5", 0.8, 0.50, 3.0, 3.0, 1.65, 1.65, 0.50, 3, 3},
	{"WEED-6", 0.8, 0.50, 3.0, 3.0, 1.65, 1.65, 0.50, 4, 4},
	{"WEED-7", 0.8, 0.50, 3.0, 3.0, 1.45, 1.45, 0.55, 4, 4},
	{"WFFD", 0.8, 0.50, 3.5, 3.5, 2.10, 2.10, 0.60, 5, 5},
	{"WFFD-1", 0.8, 0.50, 3.5, 3.5, 1.80, 1.80, 0.75, 5, 5},
	{"WFSD", 0.8, 0.50, 3.5, 4.5, 2.10, 3.10, 0.60, 4, 8},
	{"WFSD-1", 0.8, 0.50, 3.5, 4.5, 1.80, 2.80, 0.75, 4, 8},
	{"WFSD-2", 0.8, 0.50, 3.5, 4.5, 2.10, 3.10, 0.50, 4, 8},
	{"WGED", 0.8, 0.50, 4.0, 3.0, 2.25, 1.25, 0.75, 5, 3},
	{"WGGD-1", 0.8, 0.50, 4.0, 4.0, 2.25, 2.25, 0.75, 5, 5},
	{"WGGD-2", 0.8, 0.50, 4.0, 4.0, 2.25, 2.25, 0.50, 6, 6},
	{"WGGD-3", 0.8, 0.50, 4.0, 4.0, 2.30, 2.30, 0.75, 4, 3},
	{"WGGD-4", 0.8, 0.50, 4.0, 4.0, 2.30, 2.30, 0.75, 4, 4},
	{"WGGD-5", 0.8, 0.50, 4.0, 4.0, 2.80, 2.80, 0.45, 5, 5},
	{"WGGD-6", 0.8, 0.50, 4.0, 4.0, 2.80, 2.80, 0.45, 6, 6},
	{"WGGD-7", 0.8, 0.50, 4.0, 4.0, 2.90, 2.90, 0.45, 6, 8},
	{"WGGD-8", 0.8, 0.50, 4.0, 4.0, 2.60, 2.60, 0.50, 6, 6},
	{"WGGD-9", 0.8, 0.50, 4.0, 4.0, 2.45, 2.45, 0.55, 6, 6},
	{"WGGD-10", 0.8, 0.50, 4.0, 4.0, 2.60, 2.60, 0.50, 4, 4},
	{"WGGD-11", 0.8, 0.50, 4.0, 4.0, 2.60, 2.60, 0.50, 5, 5},
	{"WGHD", 0.8, 0.50, 4.0, 5.0, 2.25, 3.25, 0.50, 6, 8},
	{"WGHD-1", 0.8, 0.50, 4.0, 5.0, 2.80, 3.80, 0.45, 5, 7},
	{"WGHD-2", 0.8, 0.50, 4.0, 5.0, 2.90, 3.90, 0.45, 6, 6},
	{"WGHD-3", 0.8, 0.50, 4.0, 5.0, 2.80, 3.80, 0.45, 6, 8},
	{"WSTD", 0.8, 0.50, 4.5, 5.5, 3.10, 4.10, 0.60, 6, 10},
	{"WSTD-1", 0.8, 0.50, 4.5, 5.5, 2.80, 3.80, 0.75, 6, 10},
	{"WSUD", 0.8, 0.50, 4.5, 6.5, 3.10, 5.10, 0.60, 6, 12},
	{"WSUD-1", 0.8, 0.50, 4.5, 6.5, 2.80, 4.80, 0.75, 6, 12},
	{"WHGD", 0.8, 0.50, 5.0, 4.0, 3.25, 2.25, 0.75, 7, 5},
	{"WHHD-1", 0.8, 0.50, 5.0, 5.0, 3.35, 3.35, 0.75, 7, 7},
	{"WHHD-2", 0.8, 0.50, 5.0, 5.0, 2.35, 2.35, 0.50, 8, 8},
	{"WHHD-3", 0.8, 0.50, 5.0, 5.0, 3.80, 3.80, 0.45, 7, 7},
	{"WHHD-4", 0.8, 0.50, 5.0, 5.0, 3.80, 3.80, 0.45, 8, 8},
	{"WHHD-5", 0.8, 0.50, 5.0, 5.0, 3.70, 3.70, 0.50, 8, 8},
	{"WHHD-6", 0.8, 0.50, 5.0, 5.0, 3.45, 3.45, 0.55, 8, 8},
	{"WHJD", 0.8, 0.50, 5.0, 6.0, 3.60, 4.60, 0.75, 7, 9},
	{"WHKD", 0.8, 0.50, 5.0, 7.0, 3.25, 5.25, 0.50, 7, 12},
	{"WHKD-1", 0.8, 0.50, 5.0, 7.0, 3.80, 5.80, 0.45, 7, 12},
	{"WHKD-2", 0.8, 0.50, 5.0, 7.0, 3.50, 5.50, 0.50, 8, 12},
	{"WTUD", 0.8, 0.50, 5.5, 6.5, 4.10, 5.10, 0.60, 8, 12},
	{"WTUD-1", 0.8, 0.50, 5.5, 6.5, 3.80, 4.80, 0.65, 8, 12},
	{"WJHD", 0.8, 0.50, 6.0, 5.0, 4.25, 3.25, 0.65, 9, 7},
	{"WJJD-1", 0.8, 0.50, 6.0, 6.0, 4.25, 4.25, 0.75, 9, 9},
	{"WJJD-2", 0.8, 0.50, 6.0, 6.0, 4.25, 4.25, 0.50, 10, 10},
	{"WJJD-3", 0.8, 0.50, 6.0, 6.0, 4.30, 4.30, 0.75, 10, 9},
	{"WJJD-4", 0.8, 0.50, 6.0, 6.0, 4.80, 4.80, 0.45, 9, 9},
	{"WJJD-5", 0.8, 0.50, 6.0, 6.0, 4.80, 4.80, 0.45, 10, 10},
	{"WJJD-6", 0.8, 0.50, 6.0, 6.0, 4.45, 4.45, 0.55, 10, 10},
	{"WJJD-7", 0.8, 0.50, 6.0, 6.0, 4.30, 4.30, 0.75, 8, 8},
	{"WJJD-8", 0.8, 0.50, 6.0, 6.0, 4.60, 4.60, 0.50, 9, 9},
	{"WKHD", 0.8, 0.50, 7.0, 5.0, 5.25, 3.25, 0.50, 12, 7},
	{"WKKD", 0.8, 0.50, 7.0, 7.0, 5.80, 5.80, 0.45, 10, 10},
	{"WKKD-1", 0.8, 0.50, 7.0, 7.0, 5.25, 5.25, 0.75, 11, 11},
	{"WKKD-2", 0.8, 0.50, 7.0, 7.0, 5.25, 5.25, 0.50, 12, 12},
	{"WKKD-3", 0.8, 0.50, 7.0, 7.0, 5.80, 5.80, 0.45, 11, 11},
	{"WKKD-4", 0.8, 0.50, 7.0, 7.0, 5.80, 5.80, 0.45, 12, 12},
	{"WKKD-5", 0.8, 0.50, 7.0, 7.0, 5.30, 5.30, 0.75, 12, 10},
	{"WKKD-6", 0.8, 0.50, 7.0, 7.0, 5.45, 5.45, 0.55, 12, 12},
	{"WKKD-7", 0.8, 0.50, 7.0, 7.0, 5.30, 5.30, 0.75, 10, 12},
	{"WKKD-8", 0.8, 0.50, 7.0, 7.0, 5.20, 5.20, 0.75, 11, 13},
	{"WLLD", 0.8, 0.50, 8.0, 8.0, 6.80, 6.80, 0.45, 12, 12},
	{"WLLD-1", 0.8, 0.50, 8.0, 8.0, 6.25, 6.25, 0.75, 13, 13},
	{"WLLD-2", 0.8, 0.50, 8.0, 8.0, 6.25, 6.25, 0.50, 14, 14},
	{"WLLD-3", 0.8, 0.50, 8.0, 8.0, 6.30, 6.30, 0.75, 13, 11},
	{"WLLD-4", 0.8, 0.50, 8.0, 8.0, 6.80, 6.80, 0.45, 13, 13},
	{"WLLD-5", 0.8, 0.50, 8.0, 8.0, 6.80, 6.80, 0.45, 14, 14},
	{"WLLD-6", 0.8, 0.50, 8.0, 8.0, 6.45, 6.45, 0.55, 14, 14},
	{"WMMD", 0.8, 0.50, 9.0, 9.0, 7.80, 7.80, 0.45, 16, 16},
	{"WMMD-1", 0.8, 0.50, 9.0, 9.0, 7.80, 7.80, 0.45, 15, 15},
	{"WMMD-2", 0.8, 0.50, 9.0, 9.0, 7.80, 7.80, 0.45, 14, 14},
	{"WMMD-3", 0.8, 0.50, 9.0, 9.0, 7.45, 7.45, 0.55, 16, 16},
	{"WMMD-4", 0.8, 0.50, 9.0, 9.0, 7.50, 7.50, 0.50, 16, 16},
	{"WNND-1", 0.8, 0.50, 10.0, 10.0, 8.25, 8.25, 0.65, 16, 16},
	{"WNND-2", 0.8, 0.50, 10.0, 10.0, 8.25, 8.25, 0.65, 17, 17},
	{"WNND-3", 0.8, 0.50, 10.0, 10.0, 8.45, 8.45, 0.55, 18, 18},
	{"WNND-4", 0.8, 0.50, 10.0, 10.0, 6.50, 6.50, 0.50, 18, 18},
	{"WRRD", 0.8, 0.50, 12.0, 12.0, 10.25, 10.25, 0.60, 20, 20},
	{"WEEE", 0.8, 0.40, 3.0, 3.0, 1.25, 1.25, 0.50, 5, 5},
	{"WEEE-1", 0.8, 0.40, 3.0, 3.0, 1.25, 1.25, 0.50, 4, 4},
	{"WGGE", 0.8, 0.40, 4.0, 4.0, 2.25, 2.25, 0.50, 7, 7},
	{"WHHE", 0.8, 0.40, 5.0, 5.0, 3.25, 3.25, 0.50, 9, 9},
	{"WHHE-1", 0.8, 0.40, 5.0, 5.0, 3.75, 3.75, 0.50, 10, 10},
	{"WJJE", 0.8, 0.40, 6.0, 6.0, 4.25, 4.25, 0.50, 12, 12},
	{"WJJE-1", 0.8, 0.40, 6.0, 6.0, 4.75, 4.75, 0.50, 12, 12},
	{"WGHE", 0.8, 0.40, 4.0, 5.0, 2.70, 3.70, 0.50, 7, 9},
	{"WGHE-1", 0.8, 0.40, 4.0, 5.0, 2.70, 3.70, 0.50, 7, 10},
	{"WLLE-1", 0.8, 0.40, 8.0, 8.0, 6.25, 6.25, 0.50, 17, 17},
	{"WLLE-2", 0.8, 0.40, 8.0, 8.0, 6.60, 6.60, 0.50, 16, 16},
	{"WMME", 0.8, 0.40, 9.0, 9.0, 7.25, 7.25, 0.50, 18, 18},
	{"WMME-1", 0.8, 0.40, 9.0, 9.0, 7.25, 7.25, 0.50, 19, 19},
	{"WNNE", 0.8, 0.40, 10.0, 10.0, 8.25, 8.25, 0.50, 22, 22},
	{"WNNE-1", 0.8, 0.40, 10.0, 10.0, 6.90, 6.90, 0.50, 22, 22},
	{"WKKE", 0.8, 0.40, 7.0, 7.0, 5.25, 5.25, 0.50, 14, 14},
	{"WLLE", 0.8, 0.40, 8.0, 8.0, 6.25, 6.25, 0.50, 16, 16},
	{"WRRE", 0.8, 0.40, 12.0, 12.0, 10.25, 10.25, 0.50, 25, 25},
	{"WRRE-1", 0.8, 0.40, 12.0, 12.0, 6.90, 6.90, 0.50, 25, 25},
	{"WRRE-2", 0.8, 0.40, 12.0, 12.0, 10.25, 10.25, 0.50, 27, 27},
}

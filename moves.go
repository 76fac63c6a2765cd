package pocketcube

// Predefined moves for convenience.
//
// Example:
//
//	seq := pocketcube.FormatMoves([]pocketcube.Move{pocketcube.R, pocketcube.U, pocketcube.RPrime})
var (
	// Up face moves
	U      = Move{Face: FaceU, Turn: Quarter} // Up clockwise
	UPrime = Move{Face: FaceU, Turn: Inverse} // Up counter-clockwise
	U2     = Move{Face: FaceU, Turn: Double}  // Up 180

	// Front face moves
	F      = Move{Face: FaceF, Turn: Quarter} // Front clockwise
	FPrime = Move{Face: FaceF, Turn: Inverse} // Front counter-clockwise
	F2     = Move{Face: FaceF, Turn: Double}  // Front 180

	// Right face moves
	R      = Move{Face: FaceR, Turn: Quarter} // Right clockwise
	RPrime = Move{Face: FaceR, Turn: Inverse} // Right counter-clockwise
	R2     = Move{Face: FaceR, Turn: Double}  // Right 180
)

// Sexy move: R U R' U'
var SexyMove = []Move{R, U, RPrime, UPrime}

// Cycles the three front-top corners counter-clockwise: F2 R U F2 U' F R F R' F
var CornerCycleCCW = []Move{F2, R, U, F2, UPrime, F, R, F, RPrime, F}

// Cycles the three front-top corners clockwise: R U R F' R F R2 F U F2
var CornerCycleCW = []Move{R, U, R, FPrime, R, F, R2, F, U, F2}

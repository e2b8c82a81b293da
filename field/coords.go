package field

import "github.com/hevezolly/fallingsand/geom"

// ChunkCoord identifies a chunk in the chunk grid (not world coordinates).
type ChunkCoord = geom.Point

// globalToChunkLocal splits a world coordinate into the chunk it falls in
// and its position local to that chunk, using floored (Euclidean) division
// so negative world coordinates map correctly.
func globalToChunkLocal(pos geom.Point) (ChunkCoord, Local) {
	chunkCoord := ChunkCoord{
		X: geom.FloorDiv(pos.X, ChunkSize),
		Y: geom.FloorDiv(pos.Y, ChunkSize),
	}
	local := Local{
		X: geom.FloorMod(pos.X, ChunkSize),
		Y: geom.FloorMod(pos.Y, ChunkSize),
	}
	return chunkCoord, local
}

// localToGlobal reassembles a world coordinate from a chunk coordinate and
// a position local to it.
func localToGlobal(local Local, chunkCoord ChunkCoord) geom.Point {
	return geom.Point{
		X: chunkCoord.X*ChunkSize + local.X,
		Y: chunkCoord.Y*ChunkSize + local.Y,
	}
}

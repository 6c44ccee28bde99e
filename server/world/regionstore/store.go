// Package regionstore is a reference LevelDB-backed persistence adapter for
// server/world.ChunkSnapshot: it demonstrates the save/load handoff boundary
// spec.md §1/§6 name (chunk persistence is explicitly the host's concern,
// not the core's) without pulling persistence into server/world itself.
// Grounded on the teacher's use of github.com/df-mc/goleveldb/leveldb as its
// chunk key-value store (server/world/world.go) and on
// oriumgames-pile/provider.go's save/load provider shape (binary chunk
// encoding, directory-per-world layout) — an enrichment source since the
// teacher's own LevelDB key scheme is tied to Bedrock's chunk format, not
// this core's flat Column layout.
package regionstore

import (
	"encoding/binary"
	"fmt"

	"github.com/beta173/corestone/server/world"
	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/goleveldb/leveldb/opt"
)

// Store persists chunk snapshots to a LevelDB database, one key per
// (dimension, chunk position).
type Store struct {
	db *leveldb.DB
}

// Open opens (creating if absent) a LevelDB database at dir.
func Open(dir string) (*Store, error) {
	db, err := leveldb.OpenFile(dir, &opt.Options{})
	if err != nil {
		return nil, fmt.Errorf("regionstore: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func key(dim world.Dimension, pos world.ChunkPos) []byte {
	b := make([]byte, 9)
	b[0] = byte(dim)
	binary.BigEndian.PutUint32(b[1:5], uint32(pos.X))
	binary.BigEndian.PutUint32(b[5:9], uint32(pos.Z))
	return b
}

// Save encodes and writes snap under (dim, snap.Pos).
func (s *Store) Save(dim world.Dimension, snap *world.ChunkSnapshot) error {
	return s.db.Put(key(dim, snap.Pos), encodeSnapshot(snap), nil)
}

// Load reads and decodes the column stored at (dim, pos) into a fresh
// Column, returning false if nothing is stored there.
func (s *Store) Load(dim world.Dimension, pos world.ChunkPos) (*world.Column, bool, error) {
	data, err := s.db.Get(key(dim, pos), nil)
	if err == leveldb.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("regionstore: get %v: %w", pos, err)
	}
	col, err := decodeColumn(data)
	if err != nil {
		return nil, false, fmt.Errorf("regionstore: decode %v: %w", pos, err)
	}
	return col, true, nil
}

// Has reports whether a chunk is stored at (dim, pos).
func (s *Store) Has(dim world.Dimension, pos world.ChunkPos) (bool, error) {
	ok, err := s.db.Has(key(dim, pos), nil)
	if err != nil {
		return false, fmt.Errorf("regionstore: has %v: %w", pos, err)
	}
	return ok, nil
}

// encodeSnapshot serializes a ChunkSnapshot to the on-disk layout: blocks,
// metadata, block light, sky light (one byte each per voxel, simplest
// correct encoding — nibble-packing is an in-memory Column optimisation,
// not a wire/disk requirement), followed by the height map and biome array.
func encodeSnapshot(snap *world.ChunkSnapshot) []byte {
	const voxels = world.ColumnWidth * world.ColumnDepth * world.WorldHeight
	const cells = world.ColumnWidth * world.ColumnDepth

	buf := make([]byte, 0, voxels*4+cells*2+cells)
	blocks := make([]byte, voxels)
	meta := make([]byte, voxels)
	blockLight := make([]byte, voxels)
	skyLight := make([]byte, voxels)

	i := 0
	for y := 0; y < world.WorldHeight; y++ {
		for z := 0; z < world.ColumnDepth; z++ {
			for x := 0; x < world.ColumnWidth; x++ {
				id, m := snap.Block(x, y, z)
				blocks[i] = id
				meta[i] = m
				blockLight[i] = snap.Light(x, y, z, world.LightBlock)
				skyLight[i] = snap.Light(x, y, z, world.LightSky)
				i++
			}
		}
	}

	buf = append(buf, blocks...)
	buf = append(buf, meta...)
	buf = append(buf, blockLight...)
	buf = append(buf, skyLight...)

	heights := make([]byte, cells*2)
	biomes := make([]byte, cells)
	j := 0
	for z := 0; z < world.ColumnDepth; z++ {
		for x := 0; x < world.ColumnWidth; x++ {
			binary.BigEndian.PutUint16(heights[j*2:], uint16(int16(snap.HeightAt(x, z))))
			biomes[j] = snap.BiomeAt(x, z)
			j++
		}
	}
	buf = append(buf, heights...)
	buf = append(buf, biomes...)
	return buf
}

// decodeColumn is encodeSnapshot's inverse, populating a fresh Column via
// its raw setters.
func decodeColumn(data []byte) (*world.Column, error) {
	const voxels = world.ColumnWidth * world.ColumnDepth * world.WorldHeight
	const cells = world.ColumnWidth * world.ColumnDepth
	const want = voxels*4 + cells*2 + cells
	if len(data) != want {
		return nil, fmt.Errorf("regionstore: expected %d bytes, got %d", want, len(data))
	}

	blocks := data[:voxels]
	meta := data[voxels : voxels*2]
	blockLight := data[voxels*2 : voxels*3]
	skyLight := data[voxels*3 : voxels*4]
	heights := data[voxels*4 : voxels*4+cells*2]
	biomes := data[voxels*4+cells*2:]

	col := world.NewColumn()
	i := 0
	for y := 0; y < world.WorldHeight; y++ {
		for z := 0; z < world.ColumnDepth; z++ {
			for x := 0; x < world.ColumnWidth; x++ {
				col.SetBlockRaw(x, y, z, blocks[i], meta[i])
				col.SetLightRaw(x, y, z, world.LightBlock, blockLight[i])
				col.SetLightRaw(x, y, z, world.LightSky, skyLight[i])
				i++
			}
		}
	}

	j := 0
	for z := 0; z < world.ColumnDepth; z++ {
		for x := 0; x < world.ColumnWidth; x++ {
			h := int16(binary.BigEndian.Uint16(heights[j*2:]))
			col.SetHeightAt(x, z, int(h))
			col.SetBiomeAt(x, z, biomes[j])
			j++
		}
	}
	return col, nil
}

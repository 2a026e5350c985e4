// Package playlist provides the Playlist domain entity.
package playlist

import (
	"github.com/cockroachdb/errors"

	"github.com/osa030/tunedeck/internal/domain/song"
)

// ErrDuplicateID is returned when a song ID is already in the playlist.
var ErrDuplicateID = errors.New("duplicate song id")

// Ref addresses a node of the playlist. A Ref stays valid for the lifetime
// of the playlist because nodes are never removed.
type Ref int

// none marks a missing link.
const none Ref = -1

// node is a playlist entry linked to its neighbours.
type node struct {
	song song.Song
	prev Ref
	next Ref
}

// Rand is the random source used by Random.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Playlist is an append-only, doubly linked sequence of songs with an
// ID index. Insertion order is play order.
type Playlist struct {
	nodes []node         // Node arena, indexed by Ref
	index map[string]Ref // Song ID -> node
	head  Ref
	tail  Ref
}

// New creates an empty playlist.
func New() *Playlist {
	return &Playlist{
		nodes: make([]node, 0),
		index: make(map[string]Ref),
		head:  none,
		tail:  none,
	}
}

// Append adds a song at the tail.
// The playlist is left unchanged when the ID already exists.
func (p *Playlist) Append(s song.Song) (Ref, error) {
	if _, ok := p.index[s.ID]; ok {
		return none, errors.Wrapf(ErrDuplicateID, "song id %q", s.ID)
	}

	ref := Ref(len(p.nodes))
	p.nodes = append(p.nodes, node{song: s, prev: p.tail, next: none})
	if p.tail == none {
		p.head = ref
	} else {
		p.nodes[p.tail].next = ref
	}
	p.tail = ref
	p.index[s.ID] = ref

	return ref, nil
}

// Find returns the node holding the song with the given ID.
func (p *Playlist) Find(id string) (Ref, bool) {
	ref, ok := p.index[id]
	return ref, ok
}

// Next returns the node after ref, or false at the tail.
func (p *Playlist) Next(ref Ref) (Ref, bool) {
	if !p.valid(ref) {
		return none, false
	}
	next := p.nodes[ref].next
	return next, next != none
}

// Previous returns the node before ref, or false at the head.
func (p *Playlist) Previous(ref Ref) (Ref, bool) {
	if !p.valid(ref) {
		return none, false
	}
	prev := p.nodes[ref].prev
	return prev, prev != none
}

// Random selects a node uniformly over all songs in the playlist.
// Every arena node is linked since nothing is ever removed.
func (p *Playlist) Random(r Rand) (Ref, bool) {
	if len(p.nodes) == 0 {
		return none, false
	}
	return Ref(r.IntN(len(p.nodes))), true
}

// Song returns the song held by ref.
func (p *Playlist) Song(ref Ref) (song.Song, bool) {
	if !p.valid(ref) {
		return song.Song{}, false
	}
	return p.nodes[ref].song, true
}

// Songs returns all songs from head to tail.
func (p *Playlist) Songs() []song.Song {
	songs := make([]song.Song, 0, len(p.nodes))
	for ref := p.head; ref != none; ref = p.nodes[ref].next {
		songs = append(songs, p.nodes[ref].song)
	}
	return songs
}

// ArtistCount returns the number of songs by the given artist.
func (p *Playlist) ArtistCount(artist string) int {
	count := 0
	for _, n := range p.nodes {
		if n.song.IsByArtist(artist) {
			count++
		}
	}
	return count
}

// Len returns the number of songs.
func (p *Playlist) Len() int {
	return len(p.nodes)
}

func (p *Playlist) valid(ref Ref) bool {
	return ref >= 0 && int(ref) < len(p.nodes)
}

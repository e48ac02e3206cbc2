package simulation

import "github.com/vmihailenco/msgpack/v5"

// BodySnapshot is the part of a body mirrored over the wire.
type BodySnapshot struct {
	Position [3]float32 `msgpack:"position" json:"position"`
	Velocity [3]float32 `msgpack:"velocity" json:"velocity"`
	OnGround bool       `msgpack:"on_ground" json:"on_ground"`
	Mass     float32    `msgpack:"mass" json:"mass"`
}

// Encode encodes the snapshot with msgpack.
func (s BodySnapshot) Encode() ([]byte, error) {
	return msgpack.Marshal(s)
}

// DecodeBodySnapshot decodes a snapshot previously encoded with BodySnapshot.Encode.
func DecodeBodySnapshot(data []byte) (BodySnapshot, error) {
	var s BodySnapshot
	err := msgpack.Unmarshal(data, &s)
	return s, err
}

package booking

// RoomRef is the shape-independent reference from a reservation to a room.
type RoomRef struct {
	RoomID int64
	Number string
	Type   string
}

// RawRoomRef carries either physical shape as it arrives from a stream:
// direct {id, number, type} or nested {room_id, room: {id, number, type}}.
type RawRoomRef struct {
	ID     *int64       `json:"id,omitempty"`
	Number string       `json:"number,omitempty"`
	Type   string       `json:"type,omitempty"`
	RoomID *int64       `json:"room_id,omitempty"`
	Room   *RawRoomBody `json:"room,omitempty"`
}

type RawRoomBody struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
	Type   string `json:"type"`
}

// Resolve prefers the nested body, then room_id, then the direct id.
func (r RawRoomRef) Resolve() (RoomRef, bool) {
	ref := RoomRef{Number: r.Number, Type: r.Type}
	switch {
	case r.Room != nil && r.Room.ID != 0:
		ref.RoomID = r.Room.ID
	case r.RoomID != nil:
		ref.RoomID = *r.RoomID
	case r.ID != nil:
		ref.RoomID = *r.ID
	default:
		return RoomRef{}, false
	}
	if r.Room != nil {
		if r.Room.Number != "" {
			ref.Number = r.Room.Number
		}
		if r.Room.Type != "" {
			ref.Type = r.Room.Type
		}
	}
	return ref, ref.RoomID != 0
}

// ResolveRoomRefs drops unresolvable entries and repeated room ids.
func ResolveRoomRefs(raw []RawRoomRef) []RoomRef {
	refs := make([]RoomRef, 0, len(raw))
	seen := make(map[int64]struct{}, len(raw))
	for _, r := range raw {
		ref, ok := r.Resolve()
		if !ok {
			continue
		}
		if _, dup := seen[ref.RoomID]; dup {
			continue
		}
		seen[ref.RoomID] = struct{}{}
		refs = append(refs, ref)
	}
	return refs
}

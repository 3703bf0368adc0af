package dating

import (
	"github.com/oggyb/muzz-dating/internal/db"
)

// FromProfile converts a stored profile to its wire form. nil stays nil.
func FromProfile(p *db.Profile) *Profile {
	if p == nil {
		return nil
	}
	interests := []string(p.Interests)
	if interests == nil {
		interests = []string{}
	}
	return &Profile{
		UserId:      p.UserID,
		Name:        p.Name,
		Age:         int32(p.Age),
		Gender:      p.Gender,
		LookingFor:  p.LookingFor,
		City:        p.City,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Bio:         p.Bio,
		Occupation:  p.Occupation,
		Photos:      p.Photos(),
		MinAge:      int32(p.MinAge),
		MaxAge:      int32(p.MaxAge),
		MaxDistance: int32(p.MaxDistance),
		Interests:   interests,
	}
}

// FromMessage converts a stored message to its wire form. nil stays nil.
func FromMessage(m *db.Message) *Message {
	if m == nil {
		return nil
	}
	out := &Message{
		Id:         m.ID,
		SenderId:   m.SenderID,
		ReceiverId: m.ReceiverID,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt.UnixMilli(),
		IsRead:     m.IsRead,
	}
	if m.ReadAt != nil {
		at := m.ReadAt.UnixMilli()
		out.ReadAt = &at
	}
	return out
}

// FromMessages converts a thread, keeping its order.
func FromMessages(msgs []db.Message) []*Message {
	out := make([]*Message, 0, len(msgs))
	for i := range msgs {
		out = append(out, FromMessage(&msgs[i]))
	}
	return out
}

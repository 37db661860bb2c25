package viewer

import (
	"encoding/json"
	"log"

	"gridtactics/internal/pathfinding"

	"github.com/quasilyte/gdata"
)

// Session is the viewer state remembered per map between runs
type Session struct {
	Map              string                `json:"map"`
	Start            pathfinding.TileCoord `json:"start"`
	Goal             pathfinding.TileCoord `json:"goal"`
	EightDirectional bool                  `json:"eightDirectional"`
	AvoidHazards     bool                  `json:"avoidHazards"`
	Overlay          Overlay               `json:"overlay"`
}

// SessionStore persists sessions in the user data directory. A nil store
// loads nothing and saves nothing.
type SessionStore struct {
	manager *gdata.Manager
}

// OpenSessionStore opens the data directory for appName
func OpenSessionStore(appName string) (*SessionStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, err
	}
	return &SessionStore{manager: m}, nil
}

func sessionKey(mapName string) string {
	return "session_" + mapName
}

// Load returns the saved session for mapName, or nil when there is none
func (s *SessionStore) Load(mapName string) (*Session, error) {
	if s == nil {
		return nil, nil
	}
	data, err := s.manager.LoadItem(sessionKey(mapName))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Save stores sess under its map name
func (s *SessionStore) Save(sess Session) error {
	if s == nil {
		return nil
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.manager.SaveItem(sessionKey(sess.Map), data)
}

// Session captures the current viewer state
func (c *Controller) Session() Session {
	return Session{
		Map:              c.scenario.Map.Name,
		Start:            c.start,
		Goal:             c.goal,
		EightDirectional: c.eight,
		AvoidHazards:     c.avoid,
		Overlay:          c.overlay,
	}
}

// ApplySession restores a saved state. Sessions for another map, and tiles
// outside the current map, are ignored.
func (c *Controller) ApplySession(sess Session) {
	if sess.Map != c.scenario.Map.Name {
		log.Printf("Warning: ignoring session for map %q", sess.Map)
		return
	}
	if c.inMap(sess.Start) {
		c.start = sess.Start
	}
	if c.inMap(sess.Goal) {
		c.goal = sess.Goal
	}
	c.eight = sess.EightDirectional
	c.avoid = sess.AvoidHazards
	c.sim.SetAvoidHazards(c.avoid)
	if sess.Overlay >= OverlayNone && sess.Overlay <= OverlayLineOfSight {
		c.overlay = sess.Overlay
	}
	c.invalidate()
}

package server

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lawnchairsociety/lootscale/internal/logger"
	"github.com/lawnchairsociety/lootscale/internal/loot"
	"github.com/lawnchairsociety/lootscale/internal/reward"
)

// PreviewRequest asks for the loot table of one object.
type PreviewRequest struct {
	PlayerLevel int    `json:"player_level"`
	AreaDepth   int    `json:"area_depth"`
	Category    string `json:"category"`
	Roll        bool   `json:"roll"`
	Seed        *int64 `json:"seed,omitempty"`
}

// PreviewResponse carries a generated table, or Error when the request was rejected.
type PreviewResponse struct {
	Category       string      `json:"category,omitempty"`
	EffectiveLevel int         `json:"effective_level"`
	GoldMin        int         `json:"gold_min"`
	GoldMax        int         `json:"gold_max"`
	XP             int         `json:"xp"`
	Drops          []DropView  `json:"drops"`
	Reward         *RewardView `json:"reward,omitempty"`
	Error          string      `json:"error,omitempty"`
}

// DropView is the wire form of a drop candidate.
type DropView struct {
	ItemID      string  `json:"item_id"`
	Name        string  `json:"name"`
	Rarity      string  `json:"rarity"`
	ItemLevel   int     `json:"item_level"`
	Pool        string  `json:"pool"`
	MinQuantity int     `json:"min_quantity"`
	MaxQuantity int     `json:"max_quantity"`
	DropChance  float64 `json:"drop_chance"`
}

// RewardView is a rolled outcome of a table.
type RewardView struct {
	Seed   int64       `json:"seed"`
	Gold   int         `json:"gold"`
	XP     int         `json:"xp"`
	Grants []GrantView `json:"grants"`
}

// GrantView is one item awarded by a rolled reward.
type GrantView struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// handleSession answers preview requests until the client disconnects.
// The session must already be tracked.
func (s *Server) handleSession(conn *websocket.Conn, clientIP string) {
	defer func() {
		s.untrack(conn)
		s.connLimiter.Release(clientIP)
		conn.Close()
	}()

	if s.cfg.MaxMessageSize > 0 {
		conn.SetReadLimit(s.cfg.MaxMessageSize)
	}

	logger.Info("Preview session opened", "client_ip", clientIP)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warning("Preview session read failed", "client_ip", clientIP, "error", err)
			}
			logger.Info("Preview session closed", "client_ip", clientIP)
			return
		}

		var resp *PreviewResponse
		var req PreviewRequest
		if err := json.Unmarshal(data, &req); err != nil {
			resp = &PreviewResponse{Error: fmt.Sprintf("malformed request: %v", err)}
		} else if resp, err = s.preview(req); err != nil {
			resp = &PreviewResponse{Error: err.Error()}
		}

		if err := conn.WriteJSON(resp); err != nil {
			logger.Warning("Preview session write failed", "client_ip", clientIP, "error", err)
			return
		}
	}
}

// preview generates the table for req and, when asked, rolls it once.
// Without a seed the roll uses the current time.
func (s *Server) preview(req PreviewRequest) (*PreviewResponse, error) {
	category, err := loot.ParseObjectCategory(req.Category)
	if err != nil {
		return nil, err
	}

	table := s.generator.Generate(req.PlayerLevel, req.AreaDepth, category)
	resp := newPreviewResponse(category, table)

	if req.Roll {
		seed := time.Now().UnixNano()
		if req.Seed != nil {
			seed = *req.Seed
		}
		rolled := reward.NewResolver(rand.New(rand.NewSource(seed))).Resolve(table)
		resp.Reward = newRewardView(seed, rolled)
	}

	logger.Debug("Preview generated",
		"category", category.String(),
		"player_level", req.PlayerLevel,
		"area_depth", req.AreaDepth,
		"drops", table.DropCount(),
		"rolled", req.Roll)

	return resp, nil
}

func newPreviewResponse(category loot.ObjectCategory, table *loot.ScaledLootTable) *PreviewResponse {
	drops := table.Drops()
	resp := &PreviewResponse{
		Category:       category.String(),
		EffectiveLevel: table.EffectiveLevel(),
		GoldMin:        table.GoldMin(),
		GoldMax:        table.GoldMax(),
		XP:             table.XP(),
		Drops:          make([]DropView, 0, len(drops)),
	}
	for _, d := range drops {
		resp.Drops = append(resp.Drops, DropView{
			ItemID:      d.Item.ID,
			Name:        d.Item.Name,
			Rarity:      d.Item.Rarity.String(),
			ItemLevel:   loot.ItemLevel(d.Item),
			Pool:        d.Pool.String(),
			MinQuantity: d.MinQuantity,
			MaxQuantity: d.MaxQuantity,
			DropChance:  d.DropChance,
		})
	}
	return resp
}

func newRewardView(seed int64, rw reward.Reward) *RewardView {
	view := &RewardView{
		Seed:   seed,
		Gold:   rw.Gold,
		XP:     rw.XP,
		Grants: make([]GrantView, 0, len(rw.Grants)),
	}
	for _, g := range rw.Grants {
		view.Grants = append(view.Grants, GrantView{ItemID: g.Item.ID, Quantity: g.Quantity})
	}
	return view
}

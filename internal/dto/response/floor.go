package response

import "restaurant-booking/internal/data/entity"

type PositionResponse struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type TableResponse struct {
	ID       string           `json:"id"`
	Position PositionResponse `json:"position"`
	Seats    int              `json:"seats"`
	Label    string           `json:"label"`
	Rotation *int             `json:"rotation,omitempty"`
}

type VIPRoomResponse struct {
	ID       string           `json:"id"`
	Position PositionResponse `json:"position"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	Capacity int              `json:"capacity"`
	Name     string           `json:"name"`
}

type FloorResponse struct {
	Floor    int               `json:"floor"`
	Tables   []TableResponse   `json:"tables"`
	VIPRooms []VIPRoomResponse `json:"vipRooms"`
}

// Helper converters
func TableToResponse(table *entity.Table) TableResponse {
	return TableResponse{
		ID:       table.ID,
		Position: PositionResponse(table.Position),
		Seats:    int(table.Seats),
		Label:    table.Label,
		Rotation: table.Rotation,
	}
}

func VIPRoomToResponse(room *entity.VIPRoom) VIPRoomResponse {
	return VIPRoomResponse{
		ID:       room.ID,
		Position: PositionResponse(room.Position),
		Width:    room.Width,
		Height:   room.Height,
		Capacity: int(room.Capacity),
		Name:     room.Name,
	}
}

func FloorToResponse(layout *entity.FloorLayout) FloorResponse {
	tables := make([]TableResponse, len(layout.Tables))
	for i, t := range layout.Tables {
		tables[i] = TableToResponse(t)
	}

	rooms := make([]VIPRoomResponse, len(layout.VIPRooms))
	for i, v := range layout.VIPRooms {
		rooms[i] = VIPRoomToResponse(v)
	}

	return FloorResponse{
		Floor:    layout.Floor,
		Tables:   tables,
		VIPRooms: rooms,
	}
}

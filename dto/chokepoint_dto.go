package dto

import (
	"time"

	"github.com/tidewatch/tidewatch-backend/models"
	"github.com/tidewatch/tidewatch-backend/pure_utils"
)

type APIChokepoint struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Region      string  `json:"region"`
	Status      string  `json:"status"`
	SignalCount int     `json:"signal_count"`
}

type APIChokepointList struct {
	Items   []APIChokepoint `json:"items"`
	DataAge time.Time       `json:"data_age"`
}

func AdaptChokepointDto(state models.ChokepointState) APIChokepoint {
	return APIChokepoint{
		Id:          state.Id,
		Name:        state.Name,
		Latitude:    state.Latitude,
		Longitude:   state.Longitude,
		Region:      state.Region,
		Status:      string(state.Status),
		SignalCount: state.SignalCount,
	}
}

func AdaptChokepointList(states []models.ChokepointState, dataAge time.Time) APIChokepointList {
	return APIChokepointList{
		Items:   pure_utils.Map(states, AdaptChokepointDto),
		DataAge: dataAge,
	}
}

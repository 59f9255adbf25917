package twinapi

import (
	"github.com/tidwall/gjson"

	"github.com/twinops/twinctl/pkg/envelope"
)

// Itinerary is a travel itinerary header; its activities are fetched
// separately through ListActivities.
type Itinerary struct {
	ID          string `json:"id"`
	Titulo      string `json:"titulo"`
	Destino     string `json:"destino"`
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`
}

func decodeItineraries(raw []byte) (itineraries []Itinerary) {
	for _, item := range gjson.ParseBytes(raw).Array() {
		itineraries = append(itineraries, Itinerary{
			ID:          envelope.Str(item, "id", "Id", "ID"),
			Titulo:      envelope.Str(item, "titulo", "Titulo", "nombre", "Nombre"),
			Destino:     envelope.Str(item, "destino", "Destino"),
			FechaInicio: envelope.Str(item, "fechaInicio", "FechaInicio"),
			FechaFin:    envelope.Str(item, "fechaFin", "FechaFin"),
		})
	}
	return itineraries
}

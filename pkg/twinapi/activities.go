package twinapi

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/twinops/twinctl/pkg/envelope"
	"github.com/twinops/twinctl/pkg/twin"
)

// ListActivities returns the scheduled activities of one travel
// itinerary. Unlike the other list loaders this one does NOT silently
// substitute sample data on failure; callers that want the degraded
// mode ask for SampleActivities explicitly and tell the user.
func (c *Client) ListActivities(ctx context.Context, twinID, itineraryID string) (activities []twin.Activity, err error) {
	var body []byte
	body, err = c.get(ctx, fmt.Sprintf("/twins/%s/itineraries/%s/activities", twinID, itineraryID))
	if err != nil {
		if IsNotFound(err) {
			activities = []twin.Activity{}
			err = nil
			return activities, err
		}
		err = errors.Wrap(err, "failed to list activities")
		return activities, err
	}

	var payload envelope.Payload
	payload, err = envelope.Normalize(body)
	if err != nil {
		activities = []twin.Activity{}
		err = nil
		return activities, err
	}

	if payload.Kind == envelope.KindObject {
		activities = []twin.Activity{twin.DecodeActivity(payload.Raw)}
		return activities, err
	}

	activities = twin.DecodeActivities(payload.Raw)
	return activities, err
}

// ListItineraries returns the twin's travel itineraries as raw
// id/title pairs decoded from whatever the backend sends.
func (c *Client) ListItineraries(ctx context.Context, twinID string) (itineraries []Itinerary, err error) {
	var body []byte
	body, err = c.get(ctx, fmt.Sprintf("/twins/%s/itineraries", twinID))
	if err != nil {
		if IsNotFound(err) {
			itineraries = []Itinerary{}
			err = nil
			return itineraries, err
		}
		err = errors.Wrap(err, "failed to list itineraries")
		return itineraries, err
	}

	var payload envelope.Payload
	payload, err = envelope.Normalize(body)
	if err != nil {
		itineraries = []Itinerary{}
		err = nil
		return itineraries, err
	}

	itineraries = decodeItineraries(payload.Raw)
	return itineraries, err
}

// SampleActivities returns the built-in demo itinerary used when the
// backend is unreachable and the caller opted into sample data. This is
// an explicit mode, never a silent substitution.
func SampleActivities() (activities []twin.Activity) {
	activities = []twin.Activity{
		{
			ID:            "sample-1",
			Fecha:         "2026-09-01",
			HoraInicio:    "08:30",
			HoraFin:       "10:00",
			Titulo:        "Vuelo a Madrid",
			Tipo:          "transporte",
			Prioridad:     "alta",
			Estado:        twin.ActividadConfirmada,
			Ubicacion:     "Aeropuerto de Barajas",
			CostoEstimado: 120,
			Moneda:        "EUR",
		},
		{
			ID:            "sample-2",
			Fecha:         "2026-09-01",
			HoraInicio:    "13:00",
			HoraFin:       "14:30",
			Titulo:        "Comida en el centro",
			Tipo:          "comida",
			Prioridad:     "media",
			Estado:        twin.ActividadPlanificada,
			Ubicacion:     "Plaza Mayor",
			CostoEstimado: 35,
			Moneda:        "EUR",
		},
		{
			ID:            "sample-3",
			Fecha:         "2026-09-02",
			HoraInicio:    "10:00",
			Titulo:        "Museo del Prado",
			Tipo:          "cultura",
			Prioridad:     "media",
			Estado:        twin.ActividadPlanificada,
			Ubicacion:     "Paseo del Prado",
			CostoEstimado: 15,
			Moneda:        "EUR",
		},
	}
	return activities
}

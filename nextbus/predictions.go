package nextbus

import (
	"context"
	"encoding/xml"
	"net/url"
)

type predictionsDocument struct {
	XMLName     xml.Name             `xml:"body"`
	Error       *errorElement        `xml:"Error"`
	Predictions []predictionsElement `xml:"predictions"`
}

type predictionsElement struct {
	StopTag    string                       `xml:"stopTag,attr"`
	StopTitle  string                       `xml:"stopTitle,attr"`
	RouteTag   string                       `xml:"routeTag,attr"`
	RouteTitle string                       `xml:"routeTitle,attr"`
	Directions []predictionDirectionElement `xml:"direction"`
}

type predictionDirectionElement struct {
	Title       string              `xml:"title,attr"`
	Predictions []predictionElement `xml:"prediction"`
}

type predictionElement struct {
	EpochTime         string `xml:"epochTime,attr"`
	Seconds           string `xml:"seconds,attr"`
	Minutes           string `xml:"minutes,attr"`
	IsDeparture       string `xml:"isDeparture,attr"`
	AffectedByLayover string `xml:"affectedByLayover,attr"`
	Vehicle           string `xml:"vehicle,attr"`
	Block             string `xml:"block,attr"`
}

// FetchPredictions fetches arrival predictions for one stop on one route.
func (c *Client) FetchPredictions(ctx context.Context, routeTag, stopTag string) ([]StopPredictions, error) {
	params := url.Values{}
	params.Set("r", routeTag)
	params.Set("s", stopTag)
	return c.fetchPredictions(ctx, "predictions", params)
}

// FetchPredictionsForStopID fetches arrival predictions for a stop
// identifier across every route serving it, without naming a route.
func (c *Client) FetchPredictionsForStopID(ctx context.Context, stopID string) ([]StopPredictions, error) {
	params := url.Values{}
	params.Set("stops", stopID)
	return c.fetchPredictions(ctx, "predictionsForMultiStops", params)
}

func (c *Client) fetchPredictions(ctx context.Context, command string, params url.Values) ([]StopPredictions, error) {
	var doc predictionsDocument
	if err := c.fetchDocument(ctx, command, params, &doc); err != nil {
		return nil, err
	}
	if doc.Error != nil {
		return nil, doc.Error.toError()
	}
	return decodePredictions(doc.Predictions), nil
}

// decodePredictions applies the two-level discard policy: a direction with
// zero predictions is dropped, and a wrapper whose directions were all
// dropped is dropped too. Every StopPredictions a caller sees therefore has
// at least one direction with at least one prediction.
func decodePredictions(elems []predictionsElement) []StopPredictions {
	out := make([]StopPredictions, 0, len(elems))
	for _, pe := range elems {
		sp := StopPredictions{
			StopTag:    SanitizeText(pe.StopTag),
			StopTitle:  SanitizeText(pe.StopTitle),
			RouteTag:   SanitizeText(pe.RouteTag),
			RouteTitle: SanitizeText(pe.RouteTitle),
		}
		for _, de := range pe.Directions {
			if len(de.Predictions) == 0 {
				continue
			}
			dir := PredictionDirection{
				Title:       SanitizeText(de.Title),
				Predictions: make([]Prediction, 0, len(de.Predictions)),
			}
			for _, pr := range de.Predictions {
				dir.Predictions = append(dir.Predictions, Prediction{
					EpochTime:         SafeInt64(pr.EpochTime, 0),
					Seconds:           SafeInt(pr.Seconds, 0),
					Minutes:           SafeInt(pr.Minutes, 0),
					IsDeparture:       safeBool(pr.IsDeparture),
					AffectedByLayover: safeBool(pr.AffectedByLayover),
					Vehicle:           SanitizeText(pr.Vehicle),
					Block:             SanitizeText(pr.Block),
				})
			}
			sp.Directions = append(sp.Directions, dir)
		}
		if len(sp.Directions) == 0 {
			continue
		}
		out = append(out, sp)
	}
	return out
}

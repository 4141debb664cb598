package nextbus

import (
	"context"
	"encoding/xml"
	"net/url"
)

type vehicleLocationsDocument struct {
	XMLName  xml.Name         `xml:"body"`
	Error    *errorElement    `xml:"Error"`
	Vehicles []vehicleElement `xml:"vehicle"`
}

type vehicleElement struct {
	ID              string `xml:"id,attr"`
	RouteTag        string `xml:"routeTag,attr"`
	DirTag          string `xml:"dirTag,attr"`
	Lat             string `xml:"lat,attr"`
	Lon             string `xml:"lon,attr"`
	Heading         string `xml:"heading,attr"`
	SpeedKmHr       string `xml:"speedKmHr,attr"`
	SecsSinceReport string `xml:"secsSinceReport,attr"`
	Predictable     string `xml:"predictable,attr"`
}

// FetchVehicleLocations fetches the current vehicle snapshot. An empty
// routeTag requests vehicles across every route. Each call returns a full
// replacement snapshot; there is no incremental merge.
func (c *Client) FetchVehicleLocations(ctx context.Context, routeTag string) ([]VehicleLocation, error) {
	params := url.Values{}
	if routeTag != "" {
		params.Set("r", routeTag)
	}
	params.Set("t", "0")

	var doc vehicleLocationsDocument
	if err := c.fetchDocument(ctx, "vehicleLocations", params, &doc); err != nil {
		return nil, err
	}
	if doc.Error != nil {
		return nil, doc.Error.toError()
	}

	vehicles := make([]VehicleLocation, 0, len(doc.Vehicles))
	for _, ve := range doc.Vehicles {
		vehicles = append(vehicles, VehicleLocation{
			ID:              SanitizeText(ve.ID),
			RouteTag:        SanitizeText(ve.RouteTag),
			DirTag:          SanitizeText(ve.DirTag),
			Lat:             SafeFloat(ve.Lat, 0),
			Lon:             SafeFloat(ve.Lon, 0),
			Heading:         SafeInt(ve.Heading, 0),
			SpeedKmHr:       SafeFloat(ve.SpeedKmHr, 0),
			SecsSinceReport: SafeInt(ve.SecsSinceReport, 0),
			Predictable:     safeBool(ve.Predictable),
		})
	}
	return vehicles, nil
}

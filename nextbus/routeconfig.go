package nextbus

import (
	"context"
	"encoding/xml"
)

type routeConfigDocument struct {
	XMLName xml.Name       `xml:"body"`
	Error   *errorElement  `xml:"Error"`
	Routes  []routeElement `xml:"route"`
}

type routeElement struct {
	Tag           string `xml:"tag,attr"`
	Title         string `xml:"title,attr"`
	Color         string `xml:"color,attr"`
	OppositeColor string `xml:"oppositeColor,attr"`
	LatMin        string `xml:"latMin,attr"`
	LatMax        string `xml:"latMax,attr"`
	LonMin        string `xml:"lonMin,attr"`
	LonMax        string `xml:"lonMax,attr"`

	// Direct children only: the stop references nested under direction
	// elements are decoded separately so per-route stop listings don't get
	// conflated with per-direction stop orderings.
	Stops      []stopElement      `xml:"stop"`
	Directions []directionElement `xml:"direction"`
	Paths      []pathElement      `xml:"path"`
}

type stopElement struct {
	Tag        string `xml:"tag,attr"`
	Title      string `xml:"title,attr"`
	ShortTitle string `xml:"shortTitle,attr"`
	Lat        string `xml:"lat,attr"`
	Lon        string `xml:"lon,attr"`
	StopID     string `xml:"stopId,attr"`
}

type directionElement struct {
	Tag      string           `xml:"tag,attr"`
	Title    string           `xml:"title,attr"`
	Name     string           `xml:"name,attr"`
	UseForUI string           `xml:"useForUI,attr"`
	Stops    []stopTagElement `xml:"stop"`
}

type stopTagElement struct {
	Tag string `xml:"tag,attr"`
}

type pathElement struct {
	Points []pointElement `xml:"point"`
}

type pointElement struct {
	Lat string `xml:"lat,attr"`
	Lon string `xml:"lon,attr"`
}

// FetchRouteConfig fetches the full route configuration for the agency:
// every route with its stops, directions and paths. Route data changes
// rarely, so callers typically fetch it once at startup and hold on to it.
func (c *Client) FetchRouteConfig(ctx context.Context) ([]Route, error) {
	var doc routeConfigDocument
	if err := c.fetchDocument(ctx, "routeConfig", nil, &doc); err != nil {
		return nil, err
	}
	if doc.Error != nil {
		return nil, doc.Error.toError()
	}
	return decodeRoutes(doc.Routes), nil
}

func decodeRoutes(elems []routeElement) []Route {
	routes := make([]Route, 0, len(elems))
	for _, re := range elems {
		routes = append(routes, decodeRoute(re))
	}
	return routes
}

func decodeRoute(re routeElement) Route {
	r := Route{
		Tag:           SanitizeText(re.Tag),
		Title:         SanitizeText(re.Title),
		Color:         sanitizeColor(re.Color, DefaultRouteColor),
		OppositeColor: sanitizeColor(re.OppositeColor, DefaultRouteOppositeColor),
		LatMin:        SafeFloat(re.LatMin, 0),
		LatMax:        SafeFloat(re.LatMax, 0),
		LonMin:        SafeFloat(re.LonMin, 0),
		LonMax:        SafeFloat(re.LonMax, 0),
	}

	r.Stops = make([]Stop, 0, len(re.Stops))
	for _, se := range re.Stops {
		r.Stops = append(r.Stops, Stop{
			Tag:        SanitizeText(se.Tag),
			Title:      SanitizeText(se.Title),
			ShortTitle: SanitizeText(se.ShortTitle),
			Lat:        SafeFloat(se.Lat, 0),
			Lon:        SafeFloat(se.Lon, 0),
			StopID:     SanitizeText(se.StopID),
		})
	}

	r.Directions = make([]Direction, 0, len(re.Directions))
	for _, de := range re.Directions {
		d := Direction{
			Tag:      SanitizeText(de.Tag),
			Title:    SanitizeText(de.Title),
			Name:     SanitizeText(de.Name),
			UseForUI: safeBool(de.UseForUI),
			Stops:    make([]string, 0, len(de.Stops)),
		}
		for _, st := range de.Stops {
			d.Stops = append(d.Stops, SanitizeText(st.Tag))
		}
		r.Directions = append(r.Directions, d)
	}

	for _, pe := range re.Paths {
		if len(pe.Points) == 0 {
			continue
		}
		path := make(Path, 0, len(pe.Points))
		for _, pt := range pe.Points {
			path = append(path, PathPoint{
				Lat: SafeFloat(pt.Lat, 0),
				Lon: SafeFloat(pt.Lon, 0),
			})
		}
		r.Paths = append(r.Paths, path)
	}

	return r
}

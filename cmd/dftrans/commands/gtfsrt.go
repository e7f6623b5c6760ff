package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/fivetwenty-io/dftrans/internal/constants"
)

const (
	gtfsRealtimeVersion = "2.0"
	kmhPerMeterSecond   = 3.6
)

// SnapshotEncoder turns a monitor snapshot into a publishable payload.
type SnapshotEncoder func(snapshot VehicleSnapshot) ([]byte, error)

// snapshotEncoder returns the encoder for a --nats-encoding value.
func snapshotEncoder(encoding string) (SnapshotEncoder, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case constants.EncodingJSON:
		return encodeSnapshotJSON, nil
	case constants.EncodingGTFSRT:
		return encodeSnapshotGTFSRT, nil
	default:
		return nil, fmt.Errorf("%w: %q", constants.ErrInvalidEncoding, encoding)
	}
}

func encodeSnapshotJSON(snapshot VehicleSnapshot) ([]byte, error) {
	return json.Marshal(snapshot)
}

func encodeSnapshotGTFSRT(snapshot VehicleSnapshot) ([]byte, error) {
	feed, err := vehicleFeed(snapshot)
	if err != nil {
		return nil, err
	}

	return proto.Marshal(feed)
}

// vehicleFeed converts a snapshot into a full-dataset GTFS-Realtime feed with
// one VehiclePosition entity per vehicle. Speeds are converted from km/h to m/s.
func vehicleFeed(snapshot VehicleSnapshot) (*gtfs.FeedMessage, error) {
	feed := &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{
			GtfsRealtimeVersion: proto.String(gtfsRealtimeVersion),
			Incrementality:      gtfs.FeedHeader_FULL_DATASET.Enum(),
			Timestamp:           proto.Uint64(uint64(snapshot.Taken.Unix())),
		},
	}

	if snapshot.Vehicles == nil {
		return feed, nil
	}

	feed.Entity = make([]*gtfs.FeedEntity, 0, snapshot.Vehicles.Len())

	for _, feature := range snapshot.Vehicles.Features {
		properties := feature.Properties

		point, err := feature.Geometry.Point()
		if err != nil {
			return nil, fmt.Errorf("vehicle %s: %w", properties.Vehicle, err)
		}

		route := properties.Route
		if route == "" {
			route = snapshot.Route
		}

		position := &gtfs.VehiclePosition{
			Trip: &gtfs.TripDescriptor{RouteId: proto.String(route)},
			Vehicle: &gtfs.VehicleDescriptor{
				Id:    proto.String(string(properties.Vehicle)),
				Label: proto.String(properties.Operator),
			},
			Position: &gtfs.Position{
				Latitude:  proto.Float32(float32(point.Latitude())),
				Longitude: proto.Float32(float32(point.Longitude())),
				Speed:     proto.Float32(float32(properties.Speed / kmhPerMeterSecond)),
			},
		}

		if !properties.Reported.IsZero() {
			position.Timestamp = proto.Uint64(uint64(properties.Reported.Unix()))
		}

		feed.Entity = append(feed.Entity, &gtfs.FeedEntity{
			Id:      proto.String(string(properties.Vehicle)),
			Vehicle: position,
		})
	}

	return feed, nil
}

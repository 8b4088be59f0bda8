package workload

// Distribution names a statistical distribution used to choose records,
// scan lengths and field lengths.
type Distribution uint8

const (
	DistributionConstant Distribution = 1 + iota
	DistributionUniform
	DistributionZipfian
	DistributionLatest
)

var distributionNames = []string{"constant", "uniform", "zipfian", "latest"}

// Distributions returns the canonical tags of all distributions, in
// declaration order.
func Distributions() []string {
	return append([]string(nil), distributionNames...)
}

// String returns the lower-case tag the distribution is serialized as.
func (self Distribution) String() string {
	switch self {
	case DistributionConstant:
		return "constant"
	case DistributionUniform:
		return "uniform"
	case DistributionZipfian:
		return "zipfian"
	case DistributionLatest:
		return "latest"
	default:
		return "unknown"
	}
}

func (self Distribution) valid() bool {
	switch self {
	case DistributionConstant, DistributionUniform, DistributionZipfian, DistributionLatest:
		return true
	default:
		return false
	}
}

// ParseDistribution maps a serialized tag back to its Distribution.
// Matching is exact: names are lower-case and unpadded. Any other input
// yields an UnknownVariantError.
func ParseDistribution(name string) (Distribution, error) {
	switch name {
	case "constant":
		return DistributionConstant, nil
	case "uniform":
		return DistributionUniform, nil
	case "zipfian":
		return DistributionZipfian, nil
	case "latest":
		return DistributionLatest, nil
	default:
		return 0, &UnknownVariantError{
			Kind:    "distribution",
			Value:   name,
			Allowed: distributionNames,
		}
	}
}

// InsertOrder controls whether records are inserted in key order or in
// hashed order.
type InsertOrder uint8

const (
	InsertOrderHashed InsertOrder = 1 + iota
	InsertOrderOrdered
)

var insertOrderNames = []string{"hashed", "ordered"}

// InsertOrders returns the canonical tags of all insert orders, in
// declaration order.
func InsertOrders() []string {
	return append([]string(nil), insertOrderNames...)
}

// String returns the lower-case tag the insert order is serialized as.
func (self InsertOrder) String() string {
	switch self {
	case InsertOrderHashed:
		return "hashed"
	case InsertOrderOrdered:
		return "ordered"
	default:
		return "unknown"
	}
}

func (self InsertOrder) valid() bool {
	switch self {
	case InsertOrderHashed, InsertOrderOrdered:
		return true
	default:
		return false
	}
}

// ParseInsertOrder maps a serialized tag back to its InsertOrder.
func ParseInsertOrder(name string) (InsertOrder, error) {
	switch name {
	case "hashed":
		return InsertOrderHashed, nil
	case "ordered":
		return InsertOrderOrdered, nil
	default:
		return 0, &UnknownVariantError{
			Kind:    "insert order",
			Value:   name,
			Allowed: insertOrderNames,
		}
	}
}

// MeasurementType selects how latency measurements are collected and
// presented.
type MeasurementType uint8

const (
	MeasurementHistogram MeasurementType = 1 + iota
	MeasurementTimeSeries
	MeasurementRaw
)

var measurementTypeNames = []string{"histogram", "timeseries", "raw"}

// MeasurementTypes returns the canonical tags of all measurement types,
// in declaration order.
func MeasurementTypes() []string {
	return append([]string(nil), measurementTypeNames...)
}

// String returns the lower-case tag the measurement type is serialized as.
func (self MeasurementType) String() string {
	switch self {
	case MeasurementHistogram:
		return "histogram"
	case MeasurementTimeSeries:
		return "timeseries"
	case MeasurementRaw:
		return "raw"
	default:
		return "unknown"
	}
}

func (self MeasurementType) valid() bool {
	switch self {
	case MeasurementHistogram, MeasurementTimeSeries, MeasurementRaw:
		return true
	default:
		return false
	}
}

// ParseMeasurementType maps a serialized tag back to its MeasurementType.
func ParseMeasurementType(name string) (MeasurementType, error) {
	switch name {
	case "histogram":
		return MeasurementHistogram, nil
	case "timeseries":
		return MeasurementTimeSeries, nil
	case "raw":
		return MeasurementRaw, nil
	default:
		return 0, &UnknownVariantError{
			Kind:    "measurement type",
			Value:   name,
			Allowed: measurementTypeNames,
		}
	}
}

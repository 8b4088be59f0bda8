package workload

import (
	"github.com/hhkbp2/testify/require"
	"testing"
	"time"
)

func TestParsePropertiesEmpty(t *testing.T) {
	w, err := ParseProperties("")
	require.Nil(t, err)
	require.Equal(t, DefaultWorkload(), w)
}

func TestParsePropertiesSparse(t *testing.T) {
	text := `# a classic workload file
recordcount=5000
operationcount=10000
readproportion=0.8
updateproportion=0.2
requestdistribution=latest
insertorder=ordered
`
	w, err := ParseProperties(text)
	require.Nil(t, err)
	expected := NewBuilder().
		RecordCount(5000).
		OperationCount(10000).
		ReadProportion(0.8).
		UpdateProportion(0.2).
		RequestDistribution(DistributionLatest).
		InsertOrder(InsertOrderOrdered).
		Build()
	require.Equal(t, expected, w)
}

func TestParsePropertiesClassicSpellings(t *testing.T) {
	text := `hotspotdatafraction=0.5
histogram.buckets=500
timeseries.granularity=2000
maxexecutiontime=90
`
	w, err := ParseProperties(text)
	require.Nil(t, err)
	require.Equal(t, 0.5, w.HotspotDataFraction)
	require.Equal(t, 500*time.Millisecond, w.Histogram.Buckets)
	require.Equal(t, 2*time.Second, w.TimeSeries.Granularity)
	require.Equal(t, 90*time.Second, w.MaxExecutionTime)
}

func TestParsePropertiesIgnoresUnknownKeys(t *testing.T) {
	text := `db=basic
exporter=TextMeasurementExporter
core_workload_insertion_retry_limit=3
fieldcount=4
`
	w, err := ParseProperties(text)
	require.Nil(t, err)
	expected := NewBuilder().FieldCount(4).Build()
	require.Equal(t, expected, w)
}

func TestParsePropertiesIntegerForFloat(t *testing.T) {
	w, err := ParseProperties("readproportion=1\nupdateproportion=0\n")
	require.Nil(t, err)
	require.Equal(t, 1.0, w.ReadProportion)
	require.Equal(t, 0.0, w.UpdateProportion)
}

func TestParsePropertiesWrongType(t *testing.T) {
	_, err := ParseProperties("recordcount=many\n")
	require.NotNil(t, err)
	fte, ok := err.(*FieldTypeError)
	require.True(t, ok)
	require.Equal(t, PropertyRecordCount, fte.Key)

	_, err = ParseProperties("readallfields=yes\n")
	fte, ok = err.(*FieldTypeError)
	require.True(t, ok)
	require.Equal(t, PropertyReadAllFields, fte.Key)

	_, err = ParseProperties("recordcount=-1\n")
	fte, ok = err.(*FieldTypeError)
	require.True(t, ok)
	require.Equal(t, ErrNegativeValue, fte.Err)
}

func TestParsePropertiesDurationOverflow(t *testing.T) {
	_, err := ParseProperties("maxexecutiontime=10000000000\n")
	fte, ok := err.(*FieldTypeError)
	require.True(t, ok)
	require.Equal(t, PropertyMaxExecutionTime, fte.Key)
	require.Equal(t, ErrDurationTooLarge, fte.Err)

	_, err = ParseProperties("timeseries.granularity=10000000000000\n")
	fte, ok = err.(*FieldTypeError)
	require.True(t, ok)
	require.Equal(t, PropertyGranularityClassic, fte.Key)
	require.Equal(t, ErrDurationTooLarge, fte.Err)
}

func TestParsePropertiesUnknownVariant(t *testing.T) {
	_, err := ParseProperties("requestdistribution=exponential\n")
	require.NotNil(t, err)
	uv, ok := err.(*UnknownVariantError)
	require.True(t, ok)
	require.Equal(t, "distribution", uv.Kind)
	require.Equal(t, "exponential", uv.Value)
	require.Equal(t, PropertyRequestDistribution, uv.Key)
}

func TestParsePropertiesSyntaxError(t *testing.T) {
	// expansion cycles are the one thing the format itself rejects
	_, err := ParseProperties("a=${a}\n")
	require.NotNil(t, err)
	_, ok := err.(*SyntaxError)
	require.True(t, ok)
}

func TestLoadPropertiesFile(t *testing.T) {
	w, err := LoadProperties("workloads/workloada.properties")
	require.Nil(t, err)
	// the workload name is recorded verbatim, class path and all
	require.Equal(t, "com.yahoo.ycsb.workloads.CoreWorkload", w.Workload)
	w.Workload = PropertyWorkloadDefault
	require.Equal(t, PresetA(1000, 1000), w)
}

func TestLoadPropertiesMissingFile(t *testing.T) {
	_, err := LoadProperties("workloads/absent.properties")
	require.NotNil(t, err)
}

func TestPropertiesAgreeWithCanonicalFormat(t *testing.T) {
	fromToml, err := Parse("readcount = 0.4\nmaxscanlength = 25\n")
	require.Nil(t, err)
	fromProps, err := ParseProperties("hotspotdatafraction=0.4\nmaxscanlength=25\n")
	require.Nil(t, err)
	require.Equal(t, fromToml, fromProps)
}

package workload

import (
	"bytes"
	"math"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// document mirrors Workload field for field with the key spellings of
// the canonical format. The tags must stay in step with the Property*
// constants in config.go; the round-trip tests hold the two together.
type document struct {
	Workload                  string            `toml:"workload"`
	RecordCount               int64             `toml:"recordcount"`
	OperationCount            int64             `toml:"operationcount"`
	ThreadCount               int64             `toml:"threadcount"`
	InsertCount               int64             `toml:"insertcount"`
	InsertStart               int64             `toml:"insertstart"`
	FieldCount                int64             `toml:"fieldcount"`
	FieldLength               int64             `toml:"fieldlength"`
	ReadAllFields             bool              `toml:"readallfields"`
	WriteAllFields            bool              `toml:"writeallfields"`
	FieldLengthDistribution   string            `toml:"fieldlengthdistribution"`
	ReadProportion            float64           `toml:"readproportion"`
	UpdateProportion          float64           `toml:"updateproportion"`
	InsertProportion          float64           `toml:"insertproportion"`
	ReadModifyWriteProportion float64           `toml:"readmodifywriteproportion"`
	ScanProportion            float64           `toml:"scanproportion"`
	MaxScanLength             int64             `toml:"maxscanlength"`
	ScanLengthDistribution    string            `toml:"scanlengthdistribution"`
	InsertOrder               string            `toml:"insertorder"`
	RequestDistribution       string            `toml:"requestdistribution"`
	HotspotDataFraction       float64           `toml:"readcount"`
	HotspotOperationFraction  float64           `toml:"hotspotopnfraction"`
	MaxExecutionTime          int64             `toml:"maxexecutiontime"`
	Table                     string            `toml:"table"`
	ColumnFamily              string            `toml:"columnfamily"`
	MeasurementType           string            `toml:"measurementtype"`
	Histogram                 histogramSection  `toml:"histogram"`
	TimeSeries                timeSeriesSection `toml:"timeseries"`
}

type histogramSection struct {
	Buckets int64 `toml:"buckets"`
}

type timeSeriesSection struct {
	Granularity int64 `toml:"granularity"`
}

// Marshal renders the canonical text document for the configuration.
// Every field is written, in fixed order, so equal configurations always
// produce byte-identical documents. Durations are written as whole
// seconds (maxexecutiontime) or whole milliseconds (measurement tables).
// Marshal fails only when an enumeration field holds no known value or
// a duration field is negative; everything Marshal accepts reparses to
// an equal value.
func (self Workload) Marshal() (string, error) {
	doc, err := self.document()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(doc); err != nil {
		return "", errors.Wrap(err, "encode workload document")
	}
	return buf.String(), nil
}

// WriteFile renders the configuration and writes it to a file, creating
// or truncating it.
func (self Workload) WriteFile(path string) error {
	text, err := self.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, "write workload file %s", path)
	}
	return nil
}

func (self Workload) document() (document, error) {
	if !self.FieldLengthDistribution.valid() {
		return document{}, errors.Errorf("cannot serialize %s: no known name for value %d",
			PropertyFieldLengthDistribution, self.FieldLengthDistribution)
	}
	if !self.ScanLengthDistribution.valid() {
		return document{}, errors.Errorf("cannot serialize %s: no known name for value %d",
			PropertyScanLengthDistribution, self.ScanLengthDistribution)
	}
	if !self.InsertOrder.valid() {
		return document{}, errors.Errorf("cannot serialize %s: no known name for value %d",
			PropertyInsertOrder, self.InsertOrder)
	}
	if !self.RequestDistribution.valid() {
		return document{}, errors.Errorf("cannot serialize %s: no known name for value %d",
			PropertyRequestDistribution, self.RequestDistribution)
	}
	if !self.MeasurementType.valid() {
		return document{}, errors.Errorf("cannot serialize %s: no known name for value %d",
			PropertyMeasurementType, self.MeasurementType)
	}
	durations := []struct {
		name  string
		value time.Duration
	}{
		{PropertyMaxExecutionTime, self.MaxExecutionTime},
		{PropertyBucketsClassic, self.Histogram.Buckets},
		{PropertyGranularityClassic, self.TimeSeries.Granularity},
	}
	for _, d := range durations {
		if d.value < 0 {
			return document{}, errors.Errorf("cannot serialize %s: negative duration %v",
				d.name, d.value)
		}
	}
	return document{
		Workload:                  self.Workload,
		RecordCount:               self.RecordCount,
		OperationCount:            self.OperationCount,
		ThreadCount:               self.ThreadCount,
		InsertCount:               self.InsertCount,
		InsertStart:               self.InsertStart,
		FieldCount:                self.FieldCount,
		FieldLength:               self.FieldLength,
		ReadAllFields:             self.ReadAllFields,
		WriteAllFields:            self.WriteAllFields,
		FieldLengthDistribution:   self.FieldLengthDistribution.String(),
		ReadProportion:            self.ReadProportion,
		UpdateProportion:          self.UpdateProportion,
		InsertProportion:          self.InsertProportion,
		ReadModifyWriteProportion: self.ReadModifyWriteProportion,
		ScanProportion:            self.ScanProportion,
		MaxScanLength:             self.MaxScanLength,
		ScanLengthDistribution:    self.ScanLengthDistribution.String(),
		InsertOrder:               self.InsertOrder.String(),
		RequestDistribution:       self.RequestDistribution.String(),
		HotspotDataFraction:       self.HotspotDataFraction,
		HotspotOperationFraction:  self.HotspotOperationFraction,
		MaxExecutionTime:          int64(self.MaxExecutionTime / time.Second),
		Table:                     self.Table,
		ColumnFamily:              self.ColumnFamily,
		MeasurementType:           self.MeasurementType.String(),
		Histogram: histogramSection{
			Buckets: int64(self.Histogram.Buckets / time.Millisecond),
		},
		TimeSeries: timeSeriesSection{
			Granularity: int64(self.TimeSeries.Granularity / time.Millisecond),
		},
	}, nil
}

// Parse builds a Workload from a canonical text document. Parsing starts
// from DefaultWorkload and overrides exactly the fields the document
// mentions, so a sparse document is a diff against the defaults and the
// empty document yields the defaults themselves. Keys this package does
// not know are ignored.
//
// The error is a *SyntaxError when the text is not well formed, a
// *FieldTypeError when a known field carries a value of the wrong type
// or outside its domain, and an *UnknownVariantError when an enumeration
// field names no known member.
func Parse(text string) (Workload, error) {
	var raw map[string]toml.Primitive
	md, err := toml.Decode(text, &raw)
	if err != nil {
		return Workload{}, &SyntaxError{Err: err}
	}
	w := DefaultWorkload()
	if err := decodeRoot(md, raw, &w); err != nil {
		return Workload{}, err
	}
	return w, nil
}

// ParseFile reads a canonical document from a file. Errors opening or
// reading the file are returned wrapped; the text itself is handled
// exactly as by Parse.
func ParseFile(path string) (Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Workload{}, errors.Wrapf(err, "read workload file %s", path)
	}
	return Parse(string(data))
}

func decodeRoot(md toml.MetaData, raw map[string]toml.Primitive, w *Workload) error {
	if err := setString(md, raw, PropertyWorkload, &w.Workload); err != nil {
		return err
	}
	if err := setCount(md, raw, PropertyRecordCount, &w.RecordCount); err != nil {
		return err
	}
	if err := setCount(md, raw, PropertyOperationCount, &w.OperationCount); err != nil {
		return err
	}
	if err := setCount(md, raw, PropertyThreadCount, &w.ThreadCount); err != nil {
		return err
	}
	if err := setCount(md, raw, PropertyInsertCount, &w.InsertCount); err != nil {
		return err
	}
	if err := setCount(md, raw, PropertyInsertStart, &w.InsertStart); err != nil {
		return err
	}
	if err := setCount(md, raw, PropertyFieldCount, &w.FieldCount); err != nil {
		return err
	}
	if err := setCount(md, raw, PropertyFieldLength, &w.FieldLength); err != nil {
		return err
	}
	if err := setBool(md, raw, PropertyReadAllFields, &w.ReadAllFields); err != nil {
		return err
	}
	if err := setBool(md, raw, PropertyWriteAllFields, &w.WriteAllFields); err != nil {
		return err
	}
	if err := setDistribution(md, raw, PropertyFieldLengthDistribution, &w.FieldLengthDistribution); err != nil {
		return err
	}
	if err := setFraction(md, raw, PropertyReadProportion, &w.ReadProportion); err != nil {
		return err
	}
	if err := setFraction(md, raw, PropertyUpdateProportion, &w.UpdateProportion); err != nil {
		return err
	}
	if err := setFraction(md, raw, PropertyInsertProportion, &w.InsertProportion); err != nil {
		return err
	}
	if err := setFraction(md, raw, PropertyReadModifyWriteProportion, &w.ReadModifyWriteProportion); err != nil {
		return err
	}
	if err := setFraction(md, raw, PropertyScanProportion, &w.ScanProportion); err != nil {
		return err
	}
	if err := setCount(md, raw, PropertyMaxScanLength, &w.MaxScanLength); err != nil {
		return err
	}
	if err := setDistribution(md, raw, PropertyScanLengthDistribution, &w.ScanLengthDistribution); err != nil {
		return err
	}
	if err := setInsertOrder(md, raw, PropertyInsertOrder, &w.InsertOrder); err != nil {
		return err
	}
	if err := setDistribution(md, raw, PropertyRequestDistribution, &w.RequestDistribution); err != nil {
		return err
	}
	if err := setFraction(md, raw, HotspotDataFraction, &w.HotspotDataFraction); err != nil {
		return err
	}
	if err := setFraction(md, raw, HotspotOpnFraction, &w.HotspotOperationFraction); err != nil {
		return err
	}
	if err := setDuration(md, raw, PropertyMaxExecutionTime, time.Second, &w.MaxExecutionTime); err != nil {
		return err
	}
	if err := setString(md, raw, PropertyTableName, &w.Table); err != nil {
		return err
	}
	if err := setString(md, raw, PropertyColumnFamily, &w.ColumnFamily); err != nil {
		return err
	}
	if err := setMeasurementType(md, raw, PropertyMeasurementType, &w.MeasurementType); err != nil {
		return err
	}
	if prim, ok := raw[TableHistogram]; ok {
		// decoding a non-table into a primitive map succeeds vacuously,
		// so the key's own type has to be checked first
		if md.Type(TableHistogram) != "Hash" {
			return &FieldTypeError{Key: TableHistogram, Err: ErrNotTable}
		}
		var section map[string]toml.Primitive
		if err := md.PrimitiveDecode(prim, &section); err != nil {
			return &FieldTypeError{Key: TableHistogram, Err: err}
		}
		if err := setDuration(md, section, PropertyBuckets, time.Millisecond, &w.Histogram.Buckets); err != nil {
			return err
		}
	}
	if prim, ok := raw[TableTimeSeries]; ok {
		if md.Type(TableTimeSeries) != "Hash" {
			return &FieldTypeError{Key: TableTimeSeries, Err: ErrNotTable}
		}
		var section map[string]toml.Primitive
		if err := md.PrimitiveDecode(prim, &section); err != nil {
			return &FieldTypeError{Key: TableTimeSeries, Err: err}
		}
		if err := setDuration(md, section, PropertyGranularity, time.Millisecond, &w.TimeSeries.Granularity); err != nil {
			return err
		}
	}
	return nil
}

func setString(md toml.MetaData, raw map[string]toml.Primitive, key string, dst *string) error {
	prim, ok := raw[key]
	if !ok {
		return nil
	}
	var v string
	if err := md.PrimitiveDecode(prim, &v); err != nil {
		return &FieldTypeError{Key: key, Err: err}
	}
	*dst = v
	return nil
}

func setBool(md toml.MetaData, raw map[string]toml.Primitive, key string, dst *bool) error {
	prim, ok := raw[key]
	if !ok {
		return nil
	}
	var v bool
	if err := md.PrimitiveDecode(prim, &v); err != nil {
		return &FieldTypeError{Key: key, Err: err}
	}
	*dst = v
	return nil
}

func setCount(md toml.MetaData, raw map[string]toml.Primitive, key string, dst *int64) error {
	prim, ok := raw[key]
	if !ok {
		return nil
	}
	var v int64
	if err := md.PrimitiveDecode(prim, &v); err != nil {
		return &FieldTypeError{Key: key, Err: err}
	}
	if v < 0 {
		return &FieldTypeError{Key: key, Err: ErrNegativeValue}
	}
	*dst = v
	return nil
}

func setFraction(md toml.MetaData, raw map[string]toml.Primitive, key string, dst *float64) error {
	prim, ok := raw[key]
	if !ok {
		return nil
	}
	var v float64
	if err := md.PrimitiveDecode(prim, &v); err != nil {
		// integer literals are fine where a float is expected
		var n int64
		if err2 := md.PrimitiveDecode(prim, &n); err2 != nil {
			return &FieldTypeError{Key: key, Err: err}
		}
		v = float64(n)
	}
	*dst = v
	return nil
}

func setDuration(md toml.MetaData, raw map[string]toml.Primitive, key string, unit time.Duration, dst *time.Duration) error {
	prim, ok := raw[key]
	if !ok {
		return nil
	}
	var v int64
	if err := md.PrimitiveDecode(prim, &v); err != nil {
		return &FieldTypeError{Key: key, Err: err}
	}
	if v < 0 {
		return &FieldTypeError{Key: key, Err: ErrNegativeValue}
	}
	// the unit multiplication must not wrap around
	if v > math.MaxInt64/int64(unit) {
		return &FieldTypeError{Key: key, Err: ErrDurationTooLarge}
	}
	*dst = time.Duration(v) * unit
	return nil
}

func setDistribution(md toml.MetaData, raw map[string]toml.Primitive, key string, dst *Distribution) error {
	prim, ok := raw[key]
	if !ok {
		return nil
	}
	var name string
	if err := md.PrimitiveDecode(prim, &name); err != nil {
		return &FieldTypeError{Key: key, Err: err}
	}
	d, err := ParseDistribution(name)
	if err != nil {
		if uv, ok := err.(*UnknownVariantError); ok {
			uv.Key = key
		}
		return err
	}
	*dst = d
	return nil
}

func setInsertOrder(md toml.MetaData, raw map[string]toml.Primitive, key string, dst *InsertOrder) error {
	prim, ok := raw[key]
	if !ok {
		return nil
	}
	var name string
	if err := md.PrimitiveDecode(prim, &name); err != nil {
		return &FieldTypeError{Key: key, Err: err}
	}
	order, err := ParseInsertOrder(name)
	if err != nil {
		if uv, ok := err.(*UnknownVariantError); ok {
			uv.Key = key
		}
		return err
	}
	*dst = order
	return nil
}

func setMeasurementType(md toml.MetaData, raw map[string]toml.Primitive, key string, dst *MeasurementType) error {
	prim, ok := raw[key]
	if !ok {
		return nil
	}
	var name string
	if err := md.PrimitiveDecode(prim, &name); err != nil {
		return &FieldTypeError{Key: key, Err: err}
	}
	mt, err := ParseMeasurementType(name)
	if err != nil {
		if uv, ok := err.(*UnknownVariantError); ok {
			uv.Key = key
		}
		return err
	}
	*dst = mt
	return nil
}

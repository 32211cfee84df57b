// ABOUTME: Typed parameter and result structs for every ReadsUtils operation
// ABOUTME: One request/result pair per RPC method; shapes are compiler-enforced

package readsutils

import "encoding/json"

// Tern is a three-valued flag: "true", "false", or unset. An absent value is
// semantically distinct from false; the service treats unset as "keep the
// stored orientation".
type Tern string

// Tern values.
const (
	TernUnset Tern = ""
	TernTrue  Tern = "true"
	TernFalse Tern = "false"
)

// valid reports whether t is one of the three allowed values.
func (t Tern) valid() bool {
	return t == TernUnset || t == TernTrue || t == TernFalse
}

// ValidateFASTQParams identifies one FASTQ file to validate.
type ValidateFASTQParams struct {
	// FilePath is the path to the file on the service's scratch volume.
	FilePath string `json:"file_path"`
	// Interleaved marks the file as containing interleaved paired-end reads.
	Interleaved bool `json:"interleaved,omitempty"`
}

// ValidateFASTQResult reports the validation outcome for one file.
type ValidateFASTQResult struct {
	Validated bool `json:"validated"`
}

// UploadReadsParams describes a reads library to store. Exactly one forward
// source (FwdID, FwdFile, FwdFileURL, or FwdStagingFileName), exactly one
// workspace selector (WorkspaceID or WorkspaceName), and an object selector
// (ObjectID or Name) must be supplied; SequencingTech is required. A reverse
// source, when present, must be of the same kind as the forward source.
type UploadReadsParams struct {
	FwdID              string `json:"fwd_id,omitempty"`
	FwdFile            string `json:"fwd_file,omitempty"`
	FwdFileURL         string `json:"fwd_file_url,omitempty"`
	FwdStagingFileName string `json:"fwd_staging_file_name,omitempty"`

	RevID              string `json:"rev_id,omitempty"`
	RevFile            string `json:"rev_file,omitempty"`
	RevFileURL         string `json:"rev_file_url,omitempty"`
	RevStagingFileName string `json:"rev_staging_file_name,omitempty"`

	WorkspaceID   int64  `json:"wsid,omitempty"`
	WorkspaceName string `json:"wsname,omitempty"`
	ObjectID      int64  `json:"objid,omitempty"`
	Name          string `json:"name,omitempty"`

	SequencingTech         string  `json:"sequencing_tech,omitempty"`
	SingleGenome           *bool   `json:"single_genome,omitempty"`
	Interleaved            bool    `json:"interleaved,omitempty"`
	ReadOrientationOutward *bool   `json:"read_orientation_outward,omitempty"`
	InsertSizeMean         float64 `json:"insert_size_mean,omitempty"`
	InsertSizeStdDev       float64 `json:"insert_size_std_dev,omitempty"`
	SourceReadsRef         string  `json:"source_reads_ref,omitempty"`
	DownloadType           string  `json:"download_type,omitempty"`

	// Strain and Source are passed through to the service unchanged.
	Strain json.RawMessage `json:"strain,omitempty"`
	Source json.RawMessage `json:"source,omitempty"`
}

// UploadReadsResult carries the workspace reference of the stored library.
type UploadReadsResult struct {
	ObjRef string `json:"obj_ref"`
}

// DownloadReadsParams selects reads libraries to fetch. Interleaved requests
// conversion of the downloaded files: TernTrue forces interleaved output,
// TernFalse forces split files, TernUnset keeps the stored layout.
type DownloadReadsParams struct {
	ReadLibraries []string `json:"read_libraries"`
	Interleaved   Tern     `json:"interleaved,omitempty"`
}

// ReadsFiles locates the downloaded FASTQ files for one library.
type ReadsFiles struct {
	Fwd     string `json:"fwd"`
	FwdName string `json:"fwd_name,omitempty"`
	Rev     string `json:"rev,omitempty"`
	RevName string `json:"rev_name,omitempty"`
	Otype   string `json:"otype"`
	Type    string `json:"type"`
}

// DownloadedReadLibrary is one fetched library with the statistics the service
// stores alongside it. Pointer fields are absent when the service has not
// computed the statistic.
type DownloadedReadLibrary struct {
	Files                  ReadsFiles         `json:"files"`
	Ref                    string             `json:"ref"`
	SingleGenome           Tern               `json:"single_genome,omitempty"`
	ReadOrientationOutward Tern               `json:"read_orientation_outward,omitempty"`
	SequencingTech         string             `json:"sequencing_tech,omitempty"`
	Strain                 json.RawMessage    `json:"strain,omitempty"`
	Source                 json.RawMessage    `json:"source,omitempty"`
	InsertSizeMean         *float64           `json:"insert_size_mean,omitempty"`
	InsertSizeStdDev       *float64           `json:"insert_size_std_dev,omitempty"`
	TotalBases             int64              `json:"total_bases,omitempty"`
	ReadCount              int64              `json:"read_count,omitempty"`
	ReadLengthMean         *float64           `json:"read_length_mean,omitempty"`
	ReadLengthStdDev       *float64           `json:"read_length_stdev,omitempty"`
	PhredType              string             `json:"phred_type,omitempty"`
	NumberOfDuplicates     int64              `json:"number_of_duplicates,omitempty"`
	QualMin                *float64           `json:"qual_min,omitempty"`
	QualMax                *float64           `json:"qual_max,omitempty"`
	QualMean               *float64           `json:"qual_mean,omitempty"`
	QualStdDev             *float64           `json:"qual_stdev,omitempty"`
	GCContent              *float64           `json:"gc_content,omitempty"`
	BasePercentages        map[string]float64 `json:"base_percentages,omitempty"`
}

// DownloadReadsResult maps each requested library reference to its files.
type DownloadReadsResult struct {
	Files map[string]DownloadedReadLibrary `json:"files"`
}

// ExportParams identifies the library to package for export.
type ExportParams struct {
	InputRef string `json:"input_ref"`
}

// ExportResult carries the binary-object-store id of the export package.
type ExportResult struct {
	ShockID string `json:"shock_id"`
}

// Status is the service's self-reported state.
type Status struct {
	State         string `json:"state"`
	Message       string `json:"message"`
	Version       string `json:"version"`
	GitURL        string `json:"git_url"`
	GitCommitHash string `json:"git_commit_hash"`
}

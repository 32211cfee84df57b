// ABOUTME: Cross-field argument validation performed before any network call
// ABOUTME: Shape and arity are compiler-enforced; only business rules live here

package readsutils

import "fmt"

// Wire method names, validated against before dispatch.
const (
	methodValidateFASTQ = "validateFASTQ"
	methodUploadReads   = "upload_reads"
	methodDownloadReads = "download_reads"
	methodExportReads   = "export_reads"
	methodStatus        = "status"
	methodVersion       = "version"
)

func validateFASTQArgs(params []ValidateFASTQParams) error {
	if len(params) == 0 {
		return &ArgumentError{Method: methodValidateFASTQ, Reason: "at least one file is required"}
	}
	for i, p := range params {
		if p.FilePath == "" {
			return &ArgumentError{Method: methodValidateFASTQ, Reason: fmt.Sprintf("file_path is required (entry %d)", i)}
		}
	}
	return nil
}

func (p UploadReadsParams) validate() error {
	fwd := countSet(p.FwdID, p.FwdFile, p.FwdFileURL, p.FwdStagingFileName)
	if fwd != 1 {
		return &ArgumentError{Method: methodUploadReads,
			Reason: "exactly one of fwd_id, fwd_file, fwd_file_url, fwd_staging_file_name is required"}
	}
	rev := countSet(p.RevID, p.RevFile, p.RevFileURL, p.RevStagingFileName)
	if rev > 1 {
		return &ArgumentError{Method: methodUploadReads,
			Reason: "at most one of rev_id, rev_file, rev_file_url, rev_staging_file_name is allowed"}
	}
	if rev == 1 && !sameSourceKind(p) {
		return &ArgumentError{Method: methodUploadReads,
			Reason: "reverse reads source must be of the same kind as the forward source"}
	}
	if (p.WorkspaceID > 0) == (p.WorkspaceName != "") {
		return &ArgumentError{Method: methodUploadReads, Reason: "exactly one of wsid or wsname is required"}
	}
	if p.ObjectID <= 0 && p.Name == "" {
		return &ArgumentError{Method: methodUploadReads, Reason: "objid or name is required"}
	}
	if p.SequencingTech == "" {
		return &ArgumentError{Method: methodUploadReads, Reason: "sequencing_tech is required"}
	}
	return nil
}

// sameSourceKind checks that forward and reverse reads come from the same
// place (both shock ids, both files, both URLs, or both staging files).
func sameSourceKind(p UploadReadsParams) bool {
	switch {
	case p.RevID != "":
		return p.FwdID != ""
	case p.RevFile != "":
		return p.FwdFile != ""
	case p.RevFileURL != "":
		return p.FwdFileURL != ""
	case p.RevStagingFileName != "":
		return p.FwdStagingFileName != ""
	}
	return true
}

func (p DownloadReadsParams) validate() error {
	if len(p.ReadLibraries) == 0 {
		return &ArgumentError{Method: methodDownloadReads, Reason: "read_libraries must not be empty"}
	}
	for i, ref := range p.ReadLibraries {
		if ref == "" {
			return &ArgumentError{Method: methodDownloadReads, Reason: fmt.Sprintf("empty library reference (entry %d)", i)}
		}
	}
	if !p.Interleaved.valid() {
		return &ArgumentError{Method: methodDownloadReads,
			Reason: `interleaved must be "true", "false", or unset`}
	}
	return nil
}

func (p ExportParams) validate() error {
	if p.InputRef == "" {
		return &ArgumentError{Method: methodExportReads, Reason: "input_ref is required"}
	}
	return nil
}

func countSet(vals ...string) int {
	n := 0
	for _, v := range vals {
		if v != "" {
			n++
		}
	}
	return n
}

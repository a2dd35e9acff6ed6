// Package report turns a flat set of submitted form fields into a
// finished, paginated inspection-report PDF.
//
// The field schema is fixed: every field has a name matching its form
// key and a fallback substituted when the key is absent, so consuming
// code never sees a missing value. Data is built once per request and
// discarded after the artifact is produced.
package report

import (
	"time"
)

// Form field names.
const (
	FieldReportTitle       = "report_title"
	FieldInspectorName     = "inspector_name"
	FieldInspectorAddress  = "inspector_address"
	FieldAdjusterName      = "adjuster_name"
	FieldAdjusterNumber    = "adjuster_number"
	FieldAdjusterEmail     = "adjuster_email"
	FieldReportDate        = "report_date"
	FieldClaimNumber       = "claim_number"
	FieldYearBuilt         = "year_built"
	FieldCauseHeading      = "cause_of_loss_heading"
	FieldCause             = "cause_of_loss"
	FieldDamagesHeading    = "resulting_damages_heading"
	FieldDamages           = "resulting_damages"
	FieldScopeHeading      = "scope_of_work_heading"
	FieldScope             = "scope_of_work"
	FieldRecsHeading       = "recommendations_heading"
	FieldRecs              = "recommendations"
	FieldReservesHeading   = "reserves_heading"
	FieldReservesInput     = "reserves_input"
	FieldDisclaimerHeading = "disclaimer_heading"
	FieldDisclaimer        = "disclaimer"
)

// Field is one entry of the report schema. Fallback is substituted
// when the form key is absent; Sample pre-fills a fresh form.
type Field struct {
	Name     string
	Label    string
	Fallback string
	Sample   string
}

var schema = []Field{
	{FieldReportTitle, "Report Title", "Inspection Report", "Property Inspection Report"},
	{FieldInspectorName, "Inspector", "", "John Doe"},
	{FieldInspectorAddress, "Inspector Address", "", "123 Inspection Lane, Suite 456, Calgary, AB T1X 2Y3"},
	{FieldAdjusterName, "Adjuster Name", "", "Jane Smith"},
	{FieldAdjusterNumber, "Adjuster Number", "", "555-123-4567"},
	{FieldAdjusterEmail, "Adjuster Email", "", "jane.smith@example.com"},
	{FieldReportDate, "Report Date", "", ""}, // sample filled at runtime
	{FieldClaimNumber, "Claim Number", "", "CLM-2025-06-001"},
	{FieldYearBuilt, "Year Built", "", "2005"},
	{FieldCauseHeading, "Cause of Loss Heading", "Cause of Loss", "Cause of Loss"},
	{FieldCause, "Cause of Loss", "",
		"High winds caused a large tree branch to fall onto the roof, puncturing the shingles " +
			"and underlying sheathing. The incident occurred during a severe thunderstorm on June 25, 2025."},
	{FieldDamagesHeading, "Resulting Damages Heading", "Resulting Damages", "Resulting Damages"},
	{FieldDamages, "Resulting Damages", "",
		"Significant damage to the roof structure, including compromised trusses and water " +
			"infiltration into the attic space. Partial ceiling collapse in the master bedroom due to " +
			"water saturation. Damage to drywall, insulation, and some personal belongings in the " +
			"affected area. Minor water staining observed on walls in adjacent rooms."},
	{FieldScopeHeading, "Scope of Work Heading", "Scope of Work", "Scope of Work"},
	{FieldScope, "Scope of Work", "",
		"1. Remove and dispose of damaged roofing materials and debris.\n" +
			"2. Repair/replace compromised roof trusses and sheathing.\n" +
			"3. Install new roofing underlayment and shingles (to match existing).\n" +
			"4. Remove damaged ceiling and drywall in master bedroom.\n" +
			"5. Dry affected areas and apply mold preventative.\n" +
			"6. Replace insulation, drywall, and paint in affected areas.\n" +
			"7. Clean and restore any salvageable personal belongings; document non-salvageable items."},
	{FieldRecsHeading, "Recommendations Heading", "Recommendations", "Recommendations"},
	{FieldRecs, "Recommendations", "",
		"1. Recommend engaging a licensed roofing contractor for all roof repairs.\n" +
			"2. Advise the homeowner to have a qualified electrician inspect wiring in the attic " +
			"space due to potential water exposure.\n" +
			"3. Suggest contacting an arborist to trim overhanging branches from other trees to " +
			"prevent future incidents."},
	{FieldReservesHeading, "Reserves Heading", "Estimated Reserves", "Estimated Reserves"},
	{FieldReservesInput, "Estimated Reserves", "",
		"Roof Repair: 15000.00\nInterior Repair: 3500.00\nContents: 2000.00\nContingency: 2500.00"},
	{FieldDisclaimerHeading, "Disclaimer Heading", "Disclaimer", "Disclaimer"},
	{FieldDisclaimer, "Disclaimer", "",
		"This inspection report is based on observations made at the time of the inspection and " +
			"represents the inspector's professional opinion. It is not an exhaustive list of all " +
			"defects or conditions and does not constitute a warranty or guarantee of any kind. " +
			"Further investigation by specialists may be required for certain findings. Estimated " +
			"reserves are preliminary and subject to change based on detailed assessments and actual " +
			"repair costs. All parties should independently verify any information contained herein " +
			"and consult with appropriate professionals before making decisions."},
}

// Schema returns the ordered field schema.
func Schema() []Field {
	out := make([]Field, len(schema))
	copy(out, schema)
	return out
}

// Data is the resolved field set for one report-generation request.
// Every schema field has a value; it is immutable after construction.
type Data struct {
	fields map[string]string
}

// New builds Data from submitted form values, substituting each
// field's fallback for absent keys. Keys outside the schema are
// dropped.
func New(values map[string]string) Data {
	fields := make(map[string]string, len(schema))
	for _, f := range schema {
		v, ok := values[f.Name]
		if !ok {
			v = f.Fallback
		}
		fields[f.Name] = v
	}
	return Data{fields: fields}
}

// Get returns the resolved value of a schema field. Unknown names
// return the empty string.
func (d Data) Get(name string) string {
	return d.fields[name]
}

// Samples returns the pre-fill values for a fresh form, with the
// report date set to the current date.
func Samples() map[string]string {
	out := make(map[string]string, len(schema))
	for _, f := range schema {
		out[f.Name] = f.Sample
	}
	out[FieldReportDate] = time.Now().Format("January 2, 2006")
	return out
}

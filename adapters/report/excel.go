package report

import (
	"bytes"
	"fmt"
	"strings"

	"edna/domain/profile"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter writes a result as a workbook with one sheet per layer,
// the shape coaches review offline.
type ExcelExporter struct{}

// NewExcelExporter creates an Excel exporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export serializes the result into an xlsx workbook
func (e *ExcelExporter) Export(res profile.Result) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := e.writeCoreSheet(f, res); err != nil {
		return nil, err
	}
	if err := e.writeMirrorSheet(f, res); err != nil {
		return nil, err
	}
	if err := e.writeCapabilitySheet(f, res); err != nil {
		return nil, err
	}
	if err := e.writeDriveSheet(f, res); err != nil {
		return nil, err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *ExcelExporter) writeCoreSheet(f *excelize.File, res profile.Result) error {
	const sheet = "Core Identity"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	rows := [][]interface{}{
		{"Field", "Value"},
		{"Core Type", string(res.CoreIdentity.Type)},
		{"Architect Count", res.CoreIdentity.ArchitectCount},
		{"Alchemist Count", res.CoreIdentity.AlchemistCount},
		{"Asymmetry", res.CoreIdentity.Asymmetry},
		{"Subtype", res.Subtype.Label},
		{"Result Line", res.CoreIdentity.ResultLine},
		{"Strengths", strings.Join(res.CoreIdentity.Strengths, "; ")},
		{"Blind Spots", strings.Join(res.CoreIdentity.BlindSpots, "; ")},
	}
	return writeRows(f, sheet, rows)
}

func (e *ExcelExporter) writeMirrorSheet(f *excelize.File, res profile.Result) error {
	const sheet = "Mirror Awareness"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	m := res.MirrorAwareness
	rows := [][]interface{}{
		{"Dimension", "Score", "Level"},
		{"Recognition", m.Recognition.Score, m.Recognition.Level},
		{"Translation", m.Translation.Score, m.Translation.Level},
		{"Integration", m.Integration.Score, m.Integration.Level},
		{"Governance", m.Governance.Score, m.Governance.Level},
		{"Conflict Recovery", m.ConflictRecovery.Score, m.ConflictRecovery.Level},
		{"Overall", m.OverallScore, string(m.Band)},
	}
	return writeRows(f, sheet, rows)
}

func (e *ExcelExporter) writeCapabilitySheet(f *excelize.File, res profile.Result) error {
	const sheet = "Capability"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	n := res.Neurodiversity
	rows := [][]interface{}{
		{"Domain", "Score", "Band"},
		{"Attention Regulation", n.AttentionRegulation.Score, string(n.AttentionRegulation.Band)},
		{"Language Processing", n.LanguageProcessing.Score, string(n.LanguageProcessing.Band)},
		{"Structure & Routine", n.StructureRoutine.Score, string(n.StructureRoutine.Band)},
		{"Sensory Management", n.SensoryManagement.Score, string(n.SensoryManagement.Band)},
		{"Primary Pattern", n.PrimaryPattern, ""},
		{"Clarity", n.Clarity, ""},
	}
	return writeRows(f, sheet, rows)
}

func (e *ExcelExporter) writeDriveSheet(f *excelize.File, res profile.Result) error {
	const sheet = "Drive"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	d := res.Drive
	rows := [][]interface{}{
		{"Axis", "Type", "Score"},
		{"Mindset", d.MindsetOrientation.Type, d.MindsetOrientation.Score},
		{"Risk", d.RiskStyle.Type, d.RiskStyle.Score},
		{"Energy", d.EnergyModality.Type, d.EnergyModality.Score},
	}
	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d on %s: %w", i+1, sheet, err)
		}
	}
	return nil
}

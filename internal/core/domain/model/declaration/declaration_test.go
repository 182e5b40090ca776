package declaration_test

import (
	"testing"
	"time"

	"ihm/internal/core/domain/model/declaration"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftDeclaration(t *testing.T) *declaration.Declaration {
	t.Helper()

	decl, err := declaration.NewDeclaration(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"MD-2024-0042", "Engine room piping materials", declaration.TypeMD)
	require.NoError(t, err)
	return decl
}

func TestNewDeclaration(t *testing.T) {
	t.Run("should create draft declaration with valid params", func(t *testing.T) {
		id := kernel.NewUUID()
		requestID := kernel.NewUUID()
		supplierID := kernel.NewUUID()
		shipID := kernel.NewUUID()

		decl, err := declaration.NewDeclaration(
			id, requestID, supplierID, shipID,
			"SDOC-2024-0007", "Conformity statement", declaration.TypeSDoC)

		require.NoError(t, err)
		require.NoError(t, decl.Validate())
		assert.Equal(t, id, decl.ID())
		assert.Equal(t, requestID, decl.RequestID())
		assert.Equal(t, supplierID, decl.SupplierID())
		assert.Equal(t, shipID, decl.ShipID())
		assert.Equal(t, "SDOC-2024-0007", decl.DeclarationNumber())
		assert.Equal(t, "Conformity statement", decl.Title())
		assert.Equal(t, declaration.TypeSDoC, decl.DeclarationType())
		assert.Equal(t, declaration.StatusDraft, decl.Status())
		assert.Nil(t, decl.SubmittedDate())
		assert.Nil(t, decl.ApprovedBy())
		assert.Empty(t, decl.Materials())
	})

	t.Run("should return error with empty declaration number", func(t *testing.T) {
		_, err := declaration.NewDeclaration(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", "Title", declaration.TypeMD)

		require.Error(t, err)
	})

	t.Run("should return error with invalid references", func(t *testing.T) {
		_, err := declaration.NewDeclaration(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"MD-1", "", declaration.TypeMD)
		require.Error(t, err)

		_, err = declaration.NewDeclaration(
			kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			"MD-1", "", declaration.TypeMD)
		require.Error(t, err)

		_, err = declaration.NewDeclaration(
			kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(),
			"MD-1", "", declaration.TypeMD)
		require.Error(t, err)

		_, err = declaration.NewDeclaration(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{},
			"MD-1", "", declaration.TypeMD)
		require.Error(t, err)
	})
}

func TestDeclaration_Validate(t *testing.T) {
	t.Run("should return error when not constructed", func(t *testing.T) {
		var decl declaration.Declaration

		assert.ErrorIs(t, decl.Validate(), declaration.ErrDeclarationIsNotConstructed)
	})

	t.Run("should return error for nil declaration", func(t *testing.T) {
		var decl *declaration.Declaration

		assert.ErrorIs(t, decl.Validate(), declaration.ErrDeclarationIsNotConstructed)
	})
}

func TestDeclaration_ReplaceMaterials(t *testing.T) {
	t.Run("should attach rows preserving order", func(t *testing.T) {
		decl := draftDeclaration(t)
		lead := 12.5
		first, err := declaration.NewHazardousMaterial(
			kernel.NewUUID(), "Lead", "7439-92-1", &lead, "Pipe flange gasket", "")
		require.NoError(t, err)
		second, err := declaration.NewHazardousMaterial(
			kernel.NewUUID(), "Asbestos", "1332-21-4", nil, "Insulation", "trace amounts")
		require.NoError(t, err)

		require.NoError(t, decl.ReplaceMaterials([]*declaration.HazardousMaterial{first, second}))

		materials := decl.Materials()
		require.Len(t, materials, 2)
		assert.Equal(t, "Lead", materials[0].MaterialName())
		assert.Equal(t, "Asbestos", materials[1].MaterialName())
	})

	t.Run("should replace the existing set", func(t *testing.T) {
		decl := draftDeclaration(t)
		first, err := declaration.NewHazardousMaterial(
			kernel.NewUUID(), "Mercury", "7439-97-6", nil, "Level gauge", "")
		require.NoError(t, err)
		require.NoError(t, decl.ReplaceMaterials([]*declaration.HazardousMaterial{first}))

		require.NoError(t, decl.ReplaceMaterials(nil))

		assert.Empty(t, decl.Materials())
	})

	t.Run("should return error for unconstructed row", func(t *testing.T) {
		decl := draftDeclaration(t)

		err := decl.ReplaceMaterials([]*declaration.HazardousMaterial{{}})

		assert.ErrorIs(t, err, declaration.ErrHazardousMaterialIsNotConstructed)
	})
}

func TestDeclaration_MarkSubmitted(t *testing.T) {
	submittedAt := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

	t.Run("should move draft to submitted recording the time", func(t *testing.T) {
		decl := draftDeclaration(t)

		require.NoError(t, decl.MarkSubmitted(submittedAt))

		assert.Equal(t, declaration.StatusSubmitted, decl.Status())
		require.NotNil(t, decl.SubmittedDate())
		assert.Equal(t, submittedAt, *decl.SubmittedDate())
	})

	t.Run("should return conflict when already submitted", func(t *testing.T) {
		decl := draftDeclaration(t)
		require.NoError(t, decl.MarkSubmitted(submittedAt))

		err := decl.MarkSubmitted(submittedAt)

		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
	})

	t.Run("should clear review fields on resubmission", func(t *testing.T) {
		decl := draftDeclaration(t)
		require.NoError(t, decl.MarkSubmitted(submittedAt))
		require.NoError(t, decl.Reject(kernel.NewUUID(), submittedAt.Add(time.Hour), "missing CAS numbers"))

		resubmittedAt := submittedAt.Add(2 * time.Hour)
		require.NoError(t, decl.MarkSubmitted(resubmittedAt))

		assert.Equal(t, declaration.StatusSubmitted, decl.Status())
		assert.Empty(t, decl.RejectionReason())
		assert.Nil(t, decl.ApprovedBy())
		assert.Nil(t, decl.ApprovedDate())
		require.NotNil(t, decl.SubmittedDate())
		assert.Equal(t, resubmittedAt, *decl.SubmittedDate())
	})
}

func TestDeclaration_Approve(t *testing.T) {
	approvedAt := time.Date(2024, 5, 11, 9, 0, 0, 0, time.UTC)

	t.Run("should approve submitted declaration", func(t *testing.T) {
		decl := draftDeclaration(t)
		require.NoError(t, decl.MarkSubmitted(approvedAt.Add(-time.Hour)))
		operatorID := kernel.NewUUID()

		require.NoError(t, decl.Approve(operatorID, approvedAt))

		assert.Equal(t, declaration.StatusApproved, decl.Status())
		require.NotNil(t, decl.ApprovedBy())
		assert.Equal(t, operatorID, *decl.ApprovedBy())
		require.NotNil(t, decl.ApprovedDate())
		assert.Equal(t, approvedAt, *decl.ApprovedDate())
	})

	t.Run("should return conflict for draft declaration", func(t *testing.T) {
		decl := draftDeclaration(t)

		err := decl.Approve(kernel.NewUUID(), approvedAt)

		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
	})

	t.Run("should return error for invalid reviewer", func(t *testing.T) {
		decl := draftDeclaration(t)
		require.NoError(t, decl.MarkSubmitted(approvedAt))

		err := decl.Approve(kernel.UUID{}, approvedAt)

		require.Error(t, err)
	})
}

func TestDeclaration_Reject(t *testing.T) {
	rejectedAt := time.Date(2024, 5, 11, 9, 0, 0, 0, time.UTC)

	t.Run("should reject submitted declaration with reason", func(t *testing.T) {
		decl := draftDeclaration(t)
		require.NoError(t, decl.MarkSubmitted(rejectedAt.Add(-time.Hour)))
		operatorID := kernel.NewUUID()

		require.NoError(t, decl.Reject(operatorID, rejectedAt, "content percentages missing"))

		assert.Equal(t, declaration.StatusRejected, decl.Status())
		assert.Equal(t, "content percentages missing", decl.RejectionReason())
		require.NotNil(t, decl.ApprovedBy())
		assert.Equal(t, operatorID, *decl.ApprovedBy())
	})

	t.Run("should return conflict for terminal declaration", func(t *testing.T) {
		decl := draftDeclaration(t)
		require.NoError(t, decl.MarkSubmitted(rejectedAt))
		require.NoError(t, decl.Reject(kernel.NewUUID(), rejectedAt, "first reason"))

		err := decl.Reject(kernel.NewUUID(), rejectedAt, "second reason")

		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
	})
}

func TestDeclaration_Amend(t *testing.T) {
	t.Run("should replace header fields", func(t *testing.T) {
		decl := draftDeclaration(t)

		require.NoError(t, decl.Amend("MD-2024-0042-R1", "Revised materials list", declaration.TypeSDoC))

		assert.Equal(t, "MD-2024-0042-R1", decl.DeclarationNumber())
		assert.Equal(t, "Revised materials list", decl.Title())
		assert.Equal(t, declaration.TypeSDoC, decl.DeclarationType())
	})

	t.Run("should keep the number non-empty", func(t *testing.T) {
		decl := draftDeclaration(t)

		err := decl.Amend("", "Revised", declaration.TypeMD)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsRequiredError{}, err)
		assert.Equal(t, "MD-2024-0042", decl.DeclarationNumber())
	})
}

func TestNewHazardousMaterial(t *testing.T) {
	t.Run("should accept percentage within range", func(t *testing.T) {
		pct := 0.05
		material, err := declaration.NewHazardousMaterial(
			kernel.NewUUID(), "Cadmium", "7440-43-9", &pct, "Connector plating", "")

		require.NoError(t, err)
		require.NotNil(t, material.ContentPercentage())
		assert.InDelta(t, 0.05, *material.ContentPercentage(), 0.0001)
	})

	t.Run("should reject percentage out of range", func(t *testing.T) {
		for _, pct := range []float64{-0.1, 100.1} {
			v := pct
			_, err := declaration.NewHazardousMaterial(
				kernel.NewUUID(), "Cadmium", "7440-43-9", &v, "", "")

			require.Error(t, err)
		}
	})

	t.Run("should return error with invalid id", func(t *testing.T) {
		_, err := declaration.NewHazardousMaterial(
			kernel.UUID{}, "Lead", "7439-92-1", nil, "", "")

		require.Error(t, err)
	})
}

func TestParseType(t *testing.T) {
	t.Run("should parse the wire names", func(t *testing.T) {
		for name, want := range map[string]declaration.Type{
			"":     declaration.TypeUnspecified,
			"MD":   declaration.TypeMD,
			"SDoC": declaration.TypeSDoC,
		} {
			got, err := declaration.ParseType(name)

			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, name, got.String())
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"md", "sdoc", "MDX"} {
			_, err := declaration.ParseType(name)

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestParseComplianceStatus(t *testing.T) {
	t.Run("should parse the wire names", func(t *testing.T) {
		for name, want := range map[string]declaration.ComplianceStatus{
			"":              declaration.ComplianceUnspecified,
			"compliant":     declaration.Compliant,
			"non_compliant": declaration.NonCompliant,
		} {
			got, err := declaration.ParseComplianceStatus(name)

			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, name, got.String())
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := declaration.ParseComplianceStatus("noncompliant")

		require.Error(t, err)
	})
}

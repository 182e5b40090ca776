package declaration

import (
	"fmt"

	"ihm/internal/pkg/errs"
)

// Type is the kind of declaration document a supplier submits.
type Type int

const (
	// TypeUnspecified means the supplier has not classified the document.
	TypeUnspecified Type = iota

	// TypeMD is a Material Declaration: the declared list of materials
	// contained in a product.
	TypeMD

	// TypeSDoC is a Supplier Declaration of Conformity: the supplier's
	// attestation of regulatory compliance.
	TypeSDoC
)

// ParseType converts the wire representation ("MD", "SDoC", or empty) into
// a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "":
		return TypeUnspecified, nil
	case "MD":
		return TypeMD, nil
	case "SDoC":
		return TypeSDoC, nil
	default:
		return TypeUnspecified, errs.NewValueIsInvalidErrorWithCause(
			"declaration_type",
			fmt.Errorf("%q is not a valid declaration type", s),
		)
	}
}

// String returns the wire name of the type; empty for unspecified.
func (t Type) String() string {
	switch t {
	case TypeMD:
		return "MD"
	case TypeSDoC:
		return "SDoC"
	default:
		return ""
	}
}

// ComplianceStatus is the supplier's declared regulatory compliance state.
type ComplianceStatus int

const (
	// ComplianceUnspecified means the supplier has not declared compliance.
	ComplianceUnspecified ComplianceStatus = iota

	// Compliant means the product meets the applicable regulations.
	Compliant

	// NonCompliant means the product does not meet the regulations.
	NonCompliant
)

// ParseComplianceStatus converts the wire representation into a
// ComplianceStatus.
func ParseComplianceStatus(s string) (ComplianceStatus, error) {
	switch s {
	case "":
		return ComplianceUnspecified, nil
	case "compliant":
		return Compliant, nil
	case "non_compliant":
		return NonCompliant, nil
	default:
		return ComplianceUnspecified, errs.NewValueIsInvalidErrorWithCause(
			"compliance_status",
			fmt.Errorf("%q is not a valid compliance status", s),
		)
	}
}

// String returns the wire name of the compliance status; empty for
// unspecified.
func (c ComplianceStatus) String() string {
	switch c {
	case Compliant:
		return "compliant"
	case NonCompliant:
		return "non_compliant"
	default:
		return ""
	}
}

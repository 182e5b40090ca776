// Package procurement provides the PurchaseOrder aggregate of the
// procurement ledger. A purchase order is issued by a customer against one
// of their ships and anchors the declaration lineage: its status reflects
// how far the downstream declaration workflow has progressed.
package procurement

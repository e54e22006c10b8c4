package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	s3transfer "github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer"
)

// registerAttrFlags adds the object attribute flags shared by cp and mv.
func registerAttrFlags(cmd *cobra.Command) {
	cmd.Flags().String("acl", "", "canned ACL to apply (e.g. private, public-read)")
	cmd.Flags().StringSlice("grants", nil, "grants of the form permission=principal (permission: read|readacl|writeacl|full)")
	cmd.Flags().Bool("sse", false, "apply AES256 server-side encryption")
	cmd.Flags().String("storage-class", "", "storage class (e.g. STANDARD, REDUCED_REDUNDANCY)")
	cmd.Flags().String("website-redirect", "", "website redirect location for the object")
	cmd.Flags().String("content-type", "", "explicit Content-Type for the object")
	cmd.Flags().Bool("guess-mime-type", false, "guess Content-Type from the source file")
	cmd.Flags().String("cache-control", "", "Cache-Control header for the object")
	cmd.Flags().String("content-disposition", "", "Content-Disposition header for the object")
	cmd.Flags().String("content-encoding", "", "Content-Encoding header for the object")
	cmd.Flags().String("content-language", "", "Content-Language header for the object")
	cmd.Flags().String("expires", "", "Expires header for the object (RFC3339)")
}

// attrsFromFlags collects the attribute flags into an ObjectAttrs value.
func attrsFromFlags(cmd *cobra.Command) (s3transfer.ObjectAttrs, error) {
	flags := NewFlagLoader(cmd)

	attrs := s3transfer.ObjectAttrs{
		ACL:                flags.String("acl"),
		Grants:             flags.StringSlice("grants"),
		SSE:                flags.Bool("sse"),
		StorageClass:       flags.String("storage-class"),
		WebsiteRedirect:    flags.String("website-redirect"),
		ContentType:        flags.String("content-type"),
		GuessContentType:   flags.Bool("guess-mime-type"),
		CacheControl:       flags.String("cache-control"),
		ContentDisposition: flags.String("content-disposition"),
		ContentEncoding:    flags.String("content-encoding"),
		ContentLanguage:    flags.String("content-language"),
	}

	if raw := flags.String("expires"); raw != "" {
		expires, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return s3transfer.ObjectAttrs{}, fmt.Errorf("invalid --expires value %q: %w", raw, err)
		}
		attrs.Expires = &expires
	}

	return attrs, nil
}

package s3transfer

import (
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awstypes "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gabriel-vasile/mimetype"
	"github.com/input-output-hk/catalyst-forge-libs/fs"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer/errors"
)

// ObjectAttrs is the fixed set of metadata and ACL settings a transfer task
// carries to object-level operations. Zero values mean "not set"; the
// settings are validated once when the task is constructed and applied to
// each request in a fixed order.
type ObjectAttrs struct {
	// ACL is the canned access control policy for the object.
	ACL string

	// Grants are permission=principal entries mapped onto the four grant
	// request slots. Permission is one of read, full, readacl, writeacl.
	Grants []string

	// SSE requests AES256 server-side encryption.
	SSE bool

	// StorageClass sets the storage tier for the object.
	StorageClass string

	// WebsiteRedirect sets the website redirect location metadata.
	WebsiteRedirect string

	// GuessContentType derives the content type from the source path when no
	// explicit ContentType is given.
	GuessContentType bool

	// ContentType is the explicit MIME type. It always wins over a guess.
	ContentType string

	CacheControl       string
	ContentDisposition string
	ContentEncoding    string
	ContentLanguage    string
	Expires            *time.Time
}

// Validate checks the grant specifications. It is called at task
// construction so malformed settings are rejected before any remote call.
func (a *ObjectAttrs) Validate() error {
	_, err := a.parseGrants()
	return err
}

// grantSet holds grant principals resolved into the four request slots.
type grantSet struct {
	Read        string
	FullControl string
	ReadACP     string
	WriteACP    string
}

func (a *ObjectAttrs) parseGrants() (grantSet, error) {
	var g grantSet
	for _, grant := range a.Grants {
		permission, grantee, ok := strings.Cut(grant, "=")
		if !ok {
			return g, errors.NewError("grants", errors.ErrInvalidGrant).
				WithMessage(grant)
		}
		switch permission {
		case "read":
			g.Read = grantee
		case "full":
			g.FullControl = grantee
		case "readacl":
			g.ReadACP = grantee
		case "writeacl":
			g.WriteACP = grantee
		default:
			return g, errors.NewError("grants", errors.ErrInvalidPermission).
				WithMessage(permission)
		}
	}
	return g, nil
}

// objectParams is the neutral parameter set the attribute pipeline resolves
// into before it is applied to the request shape each operation expects.
type objectParams struct {
	acl             string
	grants          grantSet
	sse             bool
	storageClass    string
	websiteRedirect string
	contentType     string

	cacheControl       string
	contentDisposition string
	contentEncoding    string
	contentLanguage    string
	expires            *time.Time
}

// resolve runs the attribute pipeline in its fixed order. Content type
// guessing from srcPath is evaluated before the explicit ContentType so an
// explicit value always overwrites the guess.
func (a *ObjectAttrs) resolve(srcPath string, fsys fs.Filesystem) (objectParams, error) {
	grants, err := a.parseGrants()
	if err != nil {
		return objectParams{}, err
	}

	p := objectParams{
		acl:                a.ACL,
		grants:             grants,
		sse:                a.SSE,
		storageClass:       a.StorageClass,
		websiteRedirect:    a.WebsiteRedirect,
		cacheControl:       a.CacheControl,
		contentDisposition: a.ContentDisposition,
		contentEncoding:    a.ContentEncoding,
		contentLanguage:    a.ContentLanguage,
		expires:            a.Expires,
	}

	if a.GuessContentType {
		p.contentType = guessContentType(srcPath, fsys)
	}
	if a.ContentType != "" {
		p.contentType = a.ContentType
	}

	return p, nil
}

// applyToPut injects the resolved parameters into a PutObject request.
func (p objectParams) applyToPut(in *s3.PutObjectInput) {
	if p.acl != "" {
		in.ACL = awstypes.ObjectCannedACL(p.acl)
	}
	if p.grants.Read != "" {
		in.GrantRead = aws.String(p.grants.Read)
	}
	if p.grants.FullControl != "" {
		in.GrantFullControl = aws.String(p.grants.FullControl)
	}
	if p.grants.ReadACP != "" {
		in.GrantReadACP = aws.String(p.grants.ReadACP)
	}
	if p.grants.WriteACP != "" {
		in.GrantWriteACP = aws.String(p.grants.WriteACP)
	}
	if p.sse {
		in.ServerSideEncryption = awstypes.ServerSideEncryptionAes256
	}
	if p.storageClass != "" {
		in.StorageClass = awstypes.StorageClass(p.storageClass)
	}
	if p.websiteRedirect != "" {
		in.WebsiteRedirectLocation = aws.String(p.websiteRedirect)
	}
	if p.contentType != "" {
		in.ContentType = aws.String(p.contentType)
	}
	if p.cacheControl != "" {
		in.CacheControl = aws.String(p.cacheControl)
	}
	if p.contentDisposition != "" {
		in.ContentDisposition = aws.String(p.contentDisposition)
	}
	if p.contentEncoding != "" {
		in.ContentEncoding = aws.String(p.contentEncoding)
	}
	if p.contentLanguage != "" {
		in.ContentLanguage = aws.String(p.contentLanguage)
	}
	if p.expires != nil {
		in.Expires = p.expires
	}
}

// applyToCopy injects the resolved parameters into a CopyObject request.
func (p objectParams) applyToCopy(in *s3.CopyObjectInput) {
	if p.acl != "" {
		in.ACL = awstypes.ObjectCannedACL(p.acl)
	}
	if p.grants.Read != "" {
		in.GrantRead = aws.String(p.grants.Read)
	}
	if p.grants.FullControl != "" {
		in.GrantFullControl = aws.String(p.grants.FullControl)
	}
	if p.grants.ReadACP != "" {
		in.GrantReadACP = aws.String(p.grants.ReadACP)
	}
	if p.grants.WriteACP != "" {
		in.GrantWriteACP = aws.String(p.grants.WriteACP)
	}
	if p.sse {
		in.ServerSideEncryption = awstypes.ServerSideEncryptionAes256
	}
	if p.storageClass != "" {
		in.StorageClass = awstypes.StorageClass(p.storageClass)
	}
	if p.websiteRedirect != "" {
		in.WebsiteRedirectLocation = aws.String(p.websiteRedirect)
	}
	if p.contentType != "" {
		in.ContentType = aws.String(p.contentType)
	}
	if p.cacheControl != "" {
		in.CacheControl = aws.String(p.cacheControl)
	}
	if p.contentDisposition != "" {
		in.ContentDisposition = aws.String(p.contentDisposition)
	}
	if p.contentEncoding != "" {
		in.ContentEncoding = aws.String(p.contentEncoding)
	}
	if p.contentLanguage != "" {
		in.ContentLanguage = aws.String(p.contentLanguage)
	}
	if p.expires != nil {
		in.Expires = p.expires
	}
}

// applyToCreateMultipart injects the resolved parameters into a multipart
// upload initiation request.
func (p objectParams) applyToCreateMultipart(in *s3.CreateMultipartUploadInput) {
	if p.acl != "" {
		in.ACL = awstypes.ObjectCannedACL(p.acl)
	}
	if p.grants.Read != "" {
		in.GrantRead = aws.String(p.grants.Read)
	}
	if p.grants.FullControl != "" {
		in.GrantFullControl = aws.String(p.grants.FullControl)
	}
	if p.grants.ReadACP != "" {
		in.GrantReadACP = aws.String(p.grants.ReadACP)
	}
	if p.grants.WriteACP != "" {
		in.GrantWriteACP = aws.String(p.grants.WriteACP)
	}
	if p.sse {
		in.ServerSideEncryption = awstypes.ServerSideEncryptionAes256
	}
	if p.storageClass != "" {
		in.StorageClass = awstypes.StorageClass(p.storageClass)
	}
	if p.websiteRedirect != "" {
		in.WebsiteRedirectLocation = aws.String(p.websiteRedirect)
	}
	if p.contentType != "" {
		in.ContentType = aws.String(p.contentType)
	}
	if p.cacheControl != "" {
		in.CacheControl = aws.String(p.cacheControl)
	}
	if p.contentDisposition != "" {
		in.ContentDisposition = aws.String(p.contentDisposition)
	}
	if p.contentEncoding != "" {
		in.ContentEncoding = aws.String(p.contentEncoding)
	}
	if p.contentLanguage != "" {
		in.ContentLanguage = aws.String(p.contentLanguage)
	}
	if p.expires != nil {
		in.Expires = p.expires
	}
}

// guessContentType determines the content type using mimetype where possible,
// falling back to extension-based lookup when the path is not a readable
// local file. An empty result leaves the request field unset.
func guessContentType(path string, fsys fs.Filesystem) string {
	if fsys != nil {
		if file, err := fsys.Open(path); err == nil {
			defer file.Close()

			// Read first 512 bytes for content detection
			buf := make([]byte, 512)
			if n, _ := file.Read(buf); n > 0 {
				if mt := mimetype.Detect(buf[:n]); mt != nil &&
					mt.String() != "application/octet-stream" {
					return mt.String()
				}
			}
		}
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != "" {
		return mime.TypeByExtension(ext)
	}
	return ""
}

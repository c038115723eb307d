package transform

import (
	"github.com/spf13/cast"

	"github.com/reedyrm/serverless-api-cloudfront/internal/resource"
)

// commentPrefix marks distributions managed by this tool. The comment is not
// user-configurable.
const commentPrefix = "Serverless Managed "

// logging populates the access log target, or removes the Logging block when
// no bucket is configured.
func logging(p *resource.Patch, in *Input) {
	bucket := in.Config.Resolve("logging.bucket", nil, false)
	if bucket == nil {
		p.Delete("Logging")
		return
	}
	p.Set("Logging.Bucket", bucket)
	p.Set("Logging.Prefix", in.Config.Resolve("logging.prefix", "", false))
}

// aliases sets the CNAMEs. A scalar domain becomes a single-element
// sequence; no domain removes the Aliases block.
func aliases(p *resource.Patch, in *Input) {
	domain := in.Config.Resolve("domain", nil, false)
	if domain == nil {
		p.Delete("Aliases")
		return
	}
	if seq, ok := resource.Sequence(domain); ok {
		p.Set("Aliases", seq)
		return
	}
	p.Set("Aliases", []interface{}{domain})
}

func priceClass(p *resource.Patch, in *Input) {
	p.Set("PriceClass", in.Config.Resolve("priceClass", "PriceClass_All", false))
}

// origin overrides the first origin's protocol policy, domain name, and path.
// The path uses empty-allowed resolution: an explicitly empty string is kept,
// an explicit null removes the field, and an absent value defaults to the
// stage path.
func origin(p *resource.Patch, in *Input) {
	if v := in.Config.Resolve("originProtocolPolicy", nil, false); v != nil {
		p.Set("Origins[0].CustomOriginConfig.OriginProtocolPolicy", v)
	}
	if v := in.Config.Resolve("originDomainName", nil, false); v != nil {
		p.Set("Origins[0].DomainName", v)
	}

	path := in.Config.Resolve("originPath", "/"+in.Stage, true)
	if path == nil {
		p.Delete("Origins[0].OriginPath")
		return
	}
	p.Set("Origins[0].OriginPath", path)
}

// cookies configures cookie forwarding. A sequence selects whitelist mode;
// any scalar is passed through as the forward policy.
func cookies(p *resource.Patch, in *Input) {
	v := in.Config.Resolve("cookies", "all", false)
	if seq, ok := resource.Sequence(v); ok {
		p.Set("DefaultCacheBehavior.ForwardedValues.Cookies.Forward", "whitelist")
		p.Set("DefaultCacheBehavior.ForwardedValues.Cookies.WhitelistedNames", seq)
		return
	}
	p.Set("DefaultCacheBehavior.ForwardedValues.Cookies.Forward", v)
}

// headers configures header forwarding: a sequence verbatim, "none" as an
// empty sequence, any other scalar as the wildcard.
func headers(p *resource.Patch, in *Input) {
	v := in.Config.Resolve("headers", "none", false)
	if seq, ok := resource.Sequence(v); ok {
		p.Set("DefaultCacheBehavior.ForwardedValues.Headers", seq)
		return
	}
	if cast.ToString(v) == "none" {
		p.Set("DefaultCacheBehavior.ForwardedValues.Headers", []interface{}{})
		return
	}
	p.Set("DefaultCacheBehavior.ForwardedValues.Headers", []interface{}{"*"})
}

// queryString configures query-string forwarding. A sequence forwards only
// the listed keys; otherwise everything is forwarded iff the scalar is "all".
func queryString(p *resource.Patch, in *Input) {
	v := in.Config.Resolve("querystring", "all", false)
	if seq, ok := resource.Sequence(v); ok {
		p.Set("DefaultCacheBehavior.ForwardedValues.QueryString", true)
		p.Set("DefaultCacheBehavior.ForwardedValues.QueryStringCacheKeys", seq)
		return
	}
	p.Set("DefaultCacheBehavior.ForwardedValues.QueryString", cast.ToString(v) == "all")
}

func comment(p *resource.Patch, in *Input) {
	p.Set("Comment", commentPrefix+in.APIName)
}

// certificate assigns the ACM certificate ARN, or removes the whole
// ViewerCertificate block when none is configured.
func certificate(p *resource.Patch, in *Input) {
	v := in.Config.Resolve("certificate", nil, false)
	if v == nil {
		p.Delete("ViewerCertificate")
		return
	}
	p.Set("ViewerCertificate.AcmCertificateArn", v)
}

func webACL(p *resource.Patch, in *Input) {
	v := in.Config.Resolve("waf", nil, false)
	if v == nil {
		p.Delete("WebACLId")
		return
	}
	p.Set("WebACLId", v)
}

// compression enables compression only on an explicit boolean true.
func compression(p *resource.Patch, in *Input) {
	v, ok := in.Config.Resolve("compress", false, false).(bool)
	p.Set("DefaultCacheBehavior.Compress", ok && v)
}

// cachedMethods is fixed and not configurable.
func cachedMethods(p *resource.Patch, in *Input) {
	p.Set("DefaultCacheBehavior.CachedMethods", []interface{}{"HEAD", "GET", "OPTIONS"})
}

func ttls(p *resource.Patch, in *Input) {
	p.Set("DefaultCacheBehavior.MinTTL", in.Config.Resolve("MinTTL", 0, false))
	p.Set("DefaultCacheBehavior.MaxTTL", in.Config.Resolve("MaxTTL", 0, false))
	p.Set("DefaultCacheBehavior.DefaultTTL", in.Config.Resolve("DefaultTTL", 0, false))
}

// rootObject assigns DefaultRootObject only when configured to a non-empty
// string; otherwise the base template's own value survives untouched.
func rootObject(p *resource.Patch, in *Input) {
	v := cast.ToString(in.Config.Resolve("defaultRootObject", "", false))
	if v != "" {
		p.Set("DefaultRootObject", v)
	}
}

func customErrorResponses(p *resource.Patch, in *Input) {
	wrapOrDelete(p, in, "customErrorResponses", "CustomErrorResponses")
}

func cacheBehaviors(p *resource.Patch, in *Input) {
	wrapOrDelete(p, in, "cacheBehaviors", "CacheBehaviors")
}

// wrapOrDelete assigns a sequence verbatim, wraps a single entry into a
// one-element sequence, and removes the field when nothing is configured.
func wrapOrDelete(p *resource.Patch, in *Input, key, field string) {
	v := in.Config.Resolve(key, nil, false)
	if v == nil {
		p.Delete(field)
		return
	}
	if seq, ok := resource.Sequence(v); ok {
		p.Set(field, seq)
		return
	}
	p.Set(field, []interface{}{v})
}

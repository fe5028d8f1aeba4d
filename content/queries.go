package content

// GROQ projections shared by the list queries. References are expanded one
// level (->) so that callers never join.
const (
	mainImageProjection = `mainImage {
    asset-> { url },
    alt
  }`

	authorSummaryProjection = `author-> {
    _id,
    name,
    slug,
    image { asset-> { url } }
  }`

	categorySummaryProjection = `categories[]-> {
    _id,
    title,
    slug,
    color
  }`

	postSummaryProjection = `{
  _id,
  _updatedAt,
  title,
  slug,
  excerpt,
  publishedAt,
  ` + mainImageProjection + `,
  ` + authorSummaryProjection + `,
  ` + categorySummaryProjection + `
}`
)

// Named queries sent to the content store. QueryPostBySlug takes $slug and
// QueryPostsByCategory takes $categoryId; the rest take no parameters.
const (
	QueryAllPosts = `*[_type == "post"] | order(publishedAt desc) ` + postSummaryProjection

	QueryPostBySlug = `*[_type == "post" && slug.current == $slug][0] {
  _id,
  _updatedAt,
  title,
  slug,
  excerpt,
  body,
  publishedAt,
  seo,
  ` + mainImageProjection + `,
  author-> {
    _id,
    name,
    slug,
    bio,
    image { asset-> { url } },
    social
  },
  ` + categorySummaryProjection + `
}`

	QueryAllCategories = `*[_type == "category"] | order(title.en asc) {
  _id,
  title,
  slug,
  description,
  color
}`

	QueryPostsByCategory = `*[_type == "post" && $categoryId in categories[]->_id] | order(publishedAt desc) ` + postSummaryProjection

	QueryRecentPosts = `*[_type == "post"] | order(publishedAt desc)[0...3] {
  _id,
  _updatedAt,
  title,
  slug,
  excerpt,
  publishedAt,
  ` + mainImageProjection + `
}`
)

// Query parameter names.
const (
	ParamSlug       = "slug"
	ParamCategoryID = "categoryId"
)

// RecentPostsLimit is the number of posts QueryRecentPosts returns.
const RecentPostsLimit = 3

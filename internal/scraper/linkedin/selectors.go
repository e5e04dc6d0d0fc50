package linkedin

// LinkedIn DOM selectors, selectorsVersion bumps when the site markup shifts.
// These are isolated here because LinkedIn changes their DOM frequently;
// update this table when scraping breaks instead of hunting call sites.

const selectorsVersion = 2

const (
	// Feed selectors
	postSelector         = "div.feed-shared-update-v2"
	postFallbackSelector = "div.feed-shared-update"

	// Post content selectors
	postTextSelector   = "span.break-words, div.feed-shared-update-v2__description"
	postAuthorSelector = "span.update-components-actor__title"
	postTimeSelector   = "span.update-components-actor__sub-description, time"
	seeMoreSelector    = "button.feed-shared-inline-show-more-text__see-more-less-toggle"

	// Engagement selectors
	reactionsCountSelector = "span.social-details-social-counts__reactions-count"
	countSpanSelector      = "span[aria-hidden=\"true\"]"

	// Media selectors (class lists, matched per element type)
	imageClassList = "feed-shared-image__image,feed-shared-image__img"
	videoClassList = "feed-shared-video__video,feed-shared-video__player"

	// Comment selectors
	commentsButtonSelector = "button[aria-label*=\"comment\"]"
	loadMoreButtonSelector = "button[class*=\"load-more-comments\"]"
	commentItemSelector    = "article.comments-comment-item, div.comments-comment-item"
	commentTextSelector    = "span.comments-comment-item__main-content"
)

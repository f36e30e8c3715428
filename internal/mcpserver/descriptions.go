package mcpserver

// Tool descriptions with usage guidance for LLMs. Each description
// explains what the report covers, when to reach for it, and what the
// structured result contains.

func describeProperties() string {
	return `Lists every GA4 account and property the configured service account can access.

USE WHEN:
- Discovering which property ids are available before running other reports
- Verifying the service account has access to the expected property
- The user asks "which sites/apps can you see?"

RETURNS:
- One row per property: account, accountId, property, propertyId
- Use the propertyId value as property_id in the other tools`
}

func describeOverview() string {
	return `High-level GA4 site summary for a date range: users, sessions, page views, engagement.

USE WHEN:
- Answering "how is the site doing?" style questions
- Getting a baseline before drilling into pages, sources, or geography

RETURNS:
- A single row with totalUsers, newUsers, sessions, screenPageViews,
  averageSessionDuration (seconds), engagementRate and bounceRate (fractions 0-1)`
}

func describePages() string {
	return `Top pages by views over a date range.

USE WHEN:
- Finding the most-visited content
- Checking how a specific page ranks against the rest of the site

RETURNS:
- One row per page, sorted by views descending: pagePath, pageTitle,
  screenPageViews, totalUsers, averageSessionDuration (seconds)`
}

func describeSources() string {
	return `Traffic source breakdown by session source and medium.

USE WHEN:
- Understanding where visitors come from (organic, referral, direct, campaigns)
- Comparing acquisition channels over a period

RETURNS:
- One row per source/medium pair, sorted by sessions descending:
  sessionSource, sessionMedium, sessions, totalUsers, engagementRate, conversions`
}

func describeCountries() string {
	return `Geographic breakdown of sessions and users by country.

USE WHEN:
- Answering where the audience is located
- Checking reach in a specific market

RETURNS:
- One row per country, sorted by sessions descending:
  country, sessions, totalUsers, engagementRate`
}

func describeDevices() string {
	return `Device category breakdown (desktop, mobile, tablet).

USE WHEN:
- Checking the desktop/mobile split
- Deciding whether mobile experience deserves attention

RETURNS:
- One row per device category, sorted by sessions descending:
  deviceCategory, sessions, totalUsers, engagementRate`
}

func describeDaily() string {
	return `Day-by-day trend of users, sessions, and page views.

USE WHEN:
- Spotting traffic spikes, dips, or weekly patterns
- Answering "how did traffic change over the last N days?"

RETURNS:
- One row per calendar day in chronological order: date (YYYYMMDD),
  totalUsers, sessions, screenPageViews`
}

func describeRealtime() string {
	return `Active users right now, from the realtime API (trailing ~30 minutes).

USE WHEN:
- Answering "who is on the site right now?"
- Verifying a just-published page or campaign is receiving traffic

RETURNS:
- One row per screen/page currently viewed: unifiedScreenName, activeUsers
- This report has no date range; days/start/end do not apply`
}

func describeCustom() string {
	return `Arbitrary GA4 query with caller-chosen metrics and dimensions.

USE WHEN:
- None of the canned reports answers the question
- Combining metrics and dimensions the other tools don't pair up

RETURNS:
- One row per dimension combination, sorted by the first metric descending
- Columns are the requested dimensions followed by the requested metrics
- Metric and dimension names must be valid GA4 API identifiers
  (e.g. sessions, totalUsers, city, country, pagePath)`
}

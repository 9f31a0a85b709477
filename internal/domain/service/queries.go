package service

// Query names under which the cache stores results. Mutations invalidate by
// name, dropping every parameter variant at once. Invalidation matches by
// prefix, so no name may be a prefix of another.
const (
	QueryCurrentUser          = "currentUser"
	QueryVerificationMessages = "verificationMessages"
	QueryMyPosts              = "myPosts"
	QueryRequestsToMyPosts    = "requestsToMyPosts"
	QueryMyRequests           = "myRequests"
	QueryPostRequests         = "postRequests"
)

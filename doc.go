// Package twoq implements the 2Q cache replacement policy.
//
// 2Q approximates LRU-2 by routing keys through three bounded queues:
//
//   - in: a FIFO filter for newly admitted keys. A hit here is treated as a correlated
//     reference and neither reorders nor promotes the key.
//   - out: keys displaced from in get one more chance here. A hit promotes the key to main.
//   - main: an LRU of keys that have proven long-term reuse.
//
// One-time keys therefore cost at most in+out slots and never pollute main.
// A common sizing is 25% of the budget for in, 50% for out and the rest for main,
// which is what [NewWithSize] does by default.
//
// [Policy] holds no locks. Wrap it in [Synced] or serialize access yourself.
//
// See https://www.vldb.org/conf/1994/P439.PDF for the 2Q paper.
package twoq

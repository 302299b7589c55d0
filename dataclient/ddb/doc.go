/*
Package ddb implements dataclient.DataClient on AWS DynamoDB with a
single-table layout.

Items are keyed through the key-map registry: each type registers PK/SK
templates ("USER#{ID}") that are macro-expanded from item fields on write and
from the string id on reads. Every stored item also carries an EntityType
attribute so that List, Count, and Aggregate can restrict scans to one type.

Scopes prefix the partition key (scope#PK), so the same table can hold the
same logical collection for many tenants.

Capabilities and limits:
  - List filters with DynamoDB filter expressions, paginates with an opaque
    cursor over LastEvaluatedKey, and sorts the returned page client-side
    (scans have no server-side ordering).
  - Count uses Select COUNT and sums scan pages.
  - Aggregate recognizes the stages match, project, limit, and count;
    unknown stages fail with a request error.

All failures surface as one of the two error families in the errors package:
request errors for anything DynamoDB rejects, decode errors for attribute
data that does not fit the item type.
*/
package ddb
